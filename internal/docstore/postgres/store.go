// Package postgres implements the document store boundary on a
// Supabase/Postgres table. It speaks database/sql over the pgx stdlib driver
// so the SQL contract stays testable with sqlmock.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/aipage-top/aipage-backend/internal/docstore"
)

// Table holding one row per shareable HTML page.
const Table = "html_projects"

// Columns the store will accept in a field bag. Anything else is rejected
// before it can reach the SQL layer.
var columns = map[string]bool{
	"title":        true,
	"html_content": true,
	"is_public":    true,
	"user_id":      true,
	"created_at":   true,
	"updated_at":   true,
}

type Store struct {
	db *sql.DB
}

// Connect opens and pings a Postgres pool for the given DSN.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return New(db), nil
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, id string) (docstore.Doc, error) {
	const q = `
SELECT id, title, html_content, is_public, user_id, created_at, updated_at
FROM html_projects
WHERE id = $1;
`
	doc, err := scanDoc(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return docstore.Doc{ID: id}, nil
	}
	if err != nil {
		return docstore.Doc{}, err
	}
	return doc, nil
}

func (s *Store) Add(ctx context.Context, fields map[string]any) (string, error) {
	if err := checkColumns(fields); err != nil {
		return "", err
	}

	const q = `
INSERT INTO html_projects (id, title, html_content, is_public, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, q,
		id,
		fields["title"],
		fields["html_content"],
		fields["is_public"],
		nullableString(fields, "user_id"),
		fields["created_at"],
		fields["updated_at"],
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := checkColumns(fields); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	// Stable column order keeps the statement deterministic for tests.
	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, col := range []string{"title", "html_content", "is_public", "user_id", "created_at", "updated_at"} {
		v, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	args = append(args, id)

	q := fmt.Sprintf("UPDATE html_projects SET %s WHERE id = $%d;", strings.Join(sets, ", "), len(args))
	_, err := s.db.ExecContext(ctx, q, args...)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM html_projects WHERE id = $1;`
	_, err := s.db.ExecContext(ctx, q, id)
	return err
}

func (s *Store) List(ctx context.Context, publicOnly bool) ([]docstore.Doc, error) {
	q := `
SELECT id, title, html_content, is_public, user_id, created_at, updated_at
FROM html_projects
`
	if publicOnly {
		q += "WHERE is_public = TRUE\n"
	}
	q += "ORDER BY updated_at DESC;"

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]docstore.Doc, 0, 16)
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoc(row rowScanner) (docstore.Doc, error) {
	var (
		id, title, htmlContent string
		isPublic               bool
		userID                 sql.NullString
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &title, &htmlContent, &isPublic, &userID, &createdAt, &updatedAt); err != nil {
		return docstore.Doc{}, err
	}

	fields := map[string]any{
		"title":        title,
		"html_content": htmlContent,
		"is_public":    isPublic,
		"created_at":   createdAt,
		"updated_at":   updatedAt,
	}
	if userID.Valid {
		fields["user_id"] = userID.String
	}
	return docstore.Doc{ID: id, Exists: true, Fields: fields}, nil
}

func checkColumns(fields map[string]any) error {
	for k := range fields {
		if !columns[k] {
			return fmt.Errorf("unknown column %q", k)
		}
	}
	return nil
}

func nullableString(fields map[string]any, key string) any {
	if s, ok := fields[key].(string); ok && s != "" {
		return s
	}
	return nil
}
