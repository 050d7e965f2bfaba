package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/aipage-top/aipage-backend/config"
	"github.com/aipage-top/aipage-backend/internal/docstore"
	fsstore "github.com/aipage-top/aipage-backend/internal/docstore/firestore"
	"github.com/aipage-top/aipage-backend/internal/docstore/memory"
	pgstore "github.com/aipage-top/aipage-backend/internal/docstore/postgres"
	"github.com/aipage-top/aipage-backend/internal/preview"
	"github.com/aipage-top/aipage-backend/internal/projects/domain"
)

// StoreDeps is the outcome of the backend-selection decision: which store
// answers, whether it is the in-memory fallback, and how to close it.
type StoreDeps struct {
	Store    docstore.Store
	Backend  string
	Fallback bool
	closer   io.Closer
}

func (d *StoreDeps) Close() {
	if d != nil && d.closer != nil {
		_ = d.closer.Close()
	}
}

// OpenStore picks the document store backend from configuration: Firestore
// when Firebase credentials are present, otherwise Supabase/Postgres when a
// DSN is present, otherwise the in-memory mock (outside production only).
// Missing or invalid credentials in production are a fatal configuration
// error, never a silent fallback.
func OpenStore(ctx context.Context, cfg *config.Config) (*StoreDeps, error) {
	switch {
	case cfg.HasFirebase():
		s, err := fsstore.Connect(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
		if err != nil {
			return fallbackOrFail(cfg, err)
		}
		return &StoreDeps{Store: s, Backend: docstore.BackendFirestore, closer: s}, nil

	case cfg.HasDatabase():
		s, err := pgstore.Connect(ctx, cfg.Database.DSN)
		if err != nil {
			return fallbackOrFail(cfg, err)
		}
		return &StoreDeps{Store: s, Backend: docstore.BackendPostgres, closer: s}, nil

	default:
		return fallbackOrFail(cfg, nil)
	}
}

func fallbackOrFail(cfg *config.Config, cause error) (*StoreDeps, error) {
	if cfg.IsProduction() {
		if cause != nil {
			return nil, fmt.Errorf("%w: %v (set FIREBASE_CREDENTIALS_PATH or DB_DSN)", domain.ErrBackendUnavailable, cause)
		}
		return nil, fmt.Errorf("%w: set FIREBASE_CREDENTIALS_PATH or DB_DSN", domain.ErrBackendUnavailable)
	}

	if cause != nil {
		log.Printf("document store unavailable (%v), using in-memory mock store", cause)
	} else {
		log.Println("no store credentials configured, using in-memory mock store; data will not survive a restart")
	}
	return &StoreDeps{Store: memory.New(), Backend: docstore.BackendMemory, Fallback: true}, nil
}

// OpenPreviewCache returns the Redis-backed preview cache, or nil when no
// Redis address is configured.
func OpenPreviewCache(cfg *config.Config) *preview.Cache {
	if cfg.Redis.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	return preview.New(rdb, cfg.Redis.PreviewTTL)
}
