// Package docstore defines the storage-neutral boundary between the project
// gateway and whichever document store backend answers: Firestore,
// Supabase/Postgres, or the in-memory development fallback.
package docstore

import "context"

// Doc is a store document handle: an identifier, an existence flag, and the
// raw field bag. Backends produce Docs; the formatter turns them into domain
// projects.
type Doc struct {
	ID     string
	Exists bool
	Fields map[string]any
}

// Store is the capability set the gateway consumes from a document store.
// Get reports a missing document through Doc.Exists, not through an error.
// List pushes the public filter and the updated_at descending sort down to
// the backend.
type Store interface {
	Get(ctx context.Context, id string) (Doc, error)
	Add(ctx context.Context, fields map[string]any) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, publicOnly bool) ([]Doc, error)
}

// Backend names as reported by health checks and logs.
const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendMemory    = "memory"
)
