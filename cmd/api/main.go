package main

import (
	"context"
	"log"

	"github.com/aipage-top/aipage-backend/config"
	"github.com/aipage-top/aipage-backend/internal/bootstrap"
	"github.com/aipage-top/aipage-backend/internal/projects/repository"
	"github.com/aipage-top/aipage-backend/internal/projects/service"
)

const serviceName = "aipage-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer store.Close()

	repo := repository.NewRepo(store.Store, store.Fallback)
	svc := service.NewProjectService(repo, bootstrap.OpenPreviewCache(cfg))

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		Service:     svc,
		Backend:     store.Backend,
		Fallback:    store.Fallback,
	})

	log.Printf("%s listening on :%s (store=%s)", serviceName, cfg.Server.Port, store.Backend)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
