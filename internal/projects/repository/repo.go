// Package repository is the single choke point through which all project
// persistence flows. Writes pass through the HTML sanitizer before touching
// the store; reads come back through the document formatter. Store-specific
// failures are translated into the domain error taxonomy here and nowhere
// else.
package repository

import (
	"context"
	"strings"
	"time"

	"github.com/aipage-top/aipage-backend/internal/docstore"
	"github.com/aipage-top/aipage-backend/internal/projects/domain"
	"github.com/aipage-top/aipage-backend/internal/sanitize"
)

type Repo struct {
	store    docstore.Store
	fallback bool
}

// NewRepo wires the gateway to a document store. usingFallback is an explicit
// deployment decision made by the caller; the gateway never derives it from
// the environment.
func NewRepo(store docstore.Store, usingFallback bool) *Repo {
	return &Repo{store: store, fallback: usingFallback}
}

// UsingFallback reports whether the gateway is backed by the in-memory mock
// store, so user-facing code can warn that data will not persist.
func (r *Repo) UsingFallback() bool {
	return r.fallback
}

type CreateInput struct {
	Title       string
	HTMLContent string
	IsPublic    bool
	UserID      string
}

// UpdateInput carries partial field replacement: only non-nil fields are
// written. updated_at is refreshed regardless.
type UpdateInput struct {
	Title       *string
	HTMLContent *string
	IsPublic    *bool
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (*domain.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &domain.ValidationError{Field: "title"}
	}
	if in.HTMLContent == "" {
		return nil, &domain.ValidationError{Field: "html_content"}
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"title":        title,
		"html_content": sanitize.SafeHTML(in.HTMLContent),
		"is_public":    in.IsPublic,
		"created_at":   now,
		"updated_at":   now,
	}
	// user_id is omitted entirely when not supplied, never defaulted.
	if in.UserID != "" {
		fields["user_id"] = in.UserID
	}

	id, err := r.store.Add(ctx, fields)
	if err != nil {
		return nil, &domain.StoreError{Op: "create project", Err: err}
	}
	return r.readBack(ctx, "create project", id)
}

func (r *Repo) Get(ctx context.Context, id string) (*domain.Project, error) {
	return r.readBack(ctx, "get project", id)
}

func (r *Repo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Project, error) {
	if err := r.ensureExists(ctx, "update project", id); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if in.Title != nil {
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.HTMLContent != nil {
		fields["html_content"] = sanitize.SafeHTML(*in.HTMLContent)
	}
	if in.IsPublic != nil {
		fields["is_public"] = *in.IsPublic
	}

	if err := r.store.Update(ctx, id, fields); err != nil {
		return nil, &domain.StoreError{Op: "update project", Err: err}
	}
	return r.readBack(ctx, "update project", id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.ensureExists(ctx, "delete project", id); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, id); err != nil {
		return &domain.StoreError{Op: "delete project", Err: err}
	}
	return nil
}

func (r *Repo) List(ctx context.Context, publicOnly bool) ([]domain.Project, error) {
	docs, err := r.store.List(ctx, publicOnly)
	if err != nil {
		return nil, &domain.StoreError{Op: "list projects", Err: err}
	}

	out := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		if p := docstore.FormatDoc(doc); p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *Repo) ensureExists(ctx context.Context, op, id string) error {
	doc, err := r.store.Get(ctx, id)
	if err != nil {
		return &domain.StoreError{Op: op, Err: err}
	}
	if !doc.Exists {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) readBack(ctx context.Context, op, id string) (*domain.Project, error) {
	doc, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}
	p := docstore.FormatDoc(doc)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
