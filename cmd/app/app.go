package app

import (
	"context"
	"log"

	"wuddevdet/internal/config"
	"wuddevdet/internal/database"
	"wuddevdet/internal/repository"
	"wuddevdet/internal/service"
	"wuddevdet/internal/storage"
)

// App wires the configured backend, seeds it and builds the services. The
// returned DB is nil for the in-memory backend.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	seed, err := repository.LoadSeed(cfg.Board.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	var (
		db   *database.DB
		repo *repository.Repository
	)

	switch cfg.Board.Storage {
	case config.StoragePostgres:
		db, err = database.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		repo = repository.NewRepository(db.DB)

		if err := repository.ApplySeed(context.Background(), repo.Board, seed); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case config.StorageMemory:
		repo = repository.NewMemoryRepository(seed)
		log.Printf("Using in-memory board with %d posts and %d guest messages", len(seed.Posts), len(seed.GuestMessages))
	default:
		log.Fatalf("Unknown BOARD_STORAGE %q", cfg.Board.Storage)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise MinIO: %v", err)
	}

	services, err := service.NewService(repo, cfg, minioClient)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	return db, repo, services
}
