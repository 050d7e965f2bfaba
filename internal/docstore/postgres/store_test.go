package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return New(db), mock, db
}

var docColumns = []string{"id", "title", "html_content", "is_public", "user_id", "created_at", "updated_at"}

func TestStore_Get(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("returns existing document", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, title, html_content`).
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows(docColumns).
				AddRow("p-1", "Title", "<p>x</p>", true, "u-1", now, now))

		doc, err := store.Get(ctx, "p-1")
		require.NoError(t, err)
		assert.True(t, doc.Exists)
		assert.Equal(t, "p-1", doc.ID)
		assert.Equal(t, "Title", doc.Fields["title"])
		assert.Equal(t, "u-1", doc.Fields["user_id"])
		assert.Equal(t, now, doc.Fields["updated_at"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row reports non-existence without error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, title, html_content`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, doc.Exists)
		assert.Equal(t, "missing", doc.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null user_id is omitted from the field bag", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, title, html_content`).
			WithArgs("p-2").
			WillReturnRows(sqlmock.NewRows(docColumns).
				AddRow("p-2", "T", "<p>x</p>", false, nil, now, now))

		doc, err := store.Get(ctx, "p-2")
		require.NoError(t, err)
		_, present := doc.Fields["user_id"]
		assert.False(t, present)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Add(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("inserts all columns and returns a generated id", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO html_projects`).
			WithArgs(sqlmock.AnyArg(), "Title", "<p>x</p>", true, "u-1", now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := store.Add(ctx, map[string]any{
			"title":        "Title",
			"html_content": "<p>x</p>",
			"is_public":    true,
			"user_id":      "u-1",
			"created_at":   now,
			"updated_at":   now,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent user_id becomes NULL", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO html_projects`).
			WithArgs(sqlmock.AnyArg(), "T", "<p>x</p>", false, nil, now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := store.Add(ctx, map[string]any{
			"title":        "T",
			"html_content": "<p>x</p>",
			"is_public":    false,
			"created_at":   now,
			"updated_at":   now,
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown columns", func(t *testing.T) {
		_, err := store.Add(ctx, map[string]any{"evil": 1})
		assert.Error(t, err)
	})
}

func TestStore_Update(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("sets only supplied columns in stable order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE html_projects SET title = \$1, updated_at = \$2 WHERE id = \$3`).
			WithArgs("New", now, "p-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Update(ctx, "p-1", map[string]any{"title": "New", "updated_at": now})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty field bag is a no-op", func(t *testing.T) {
		require.NoError(t, store.Update(ctx, "p-1", map[string]any{}))
	})
}

func TestStore_Delete(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM html_projects`).
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), "p-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_List(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("lists all ordered by updated_at descending", func(t *testing.T) {
		mock.ExpectQuery(`ORDER BY updated_at DESC`).
			WillReturnRows(sqlmock.NewRows(docColumns).
				AddRow("p-2", "B", "<p>b</p>", false, nil, now, now.Add(time.Hour)).
				AddRow("p-1", "A", "<p>a</p>", true, nil, now, now))

		docs, err := store.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "p-2", docs[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("public filter is pushed down to SQL", func(t *testing.T) {
		mock.ExpectQuery(`WHERE is_public = TRUE`).
			WillReturnRows(sqlmock.NewRows(docColumns).
				AddRow("p-1", "A", "<p>a</p>", true, nil, now, now))

		docs, err := store.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, true, docs[0].Fields["is_public"])
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
