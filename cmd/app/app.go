package app

import (
	"log"

	"blogql/internal/config"
	"blogql/internal/database"
	"blogql/internal/repository"
	"blogql/internal/service"
	"blogql/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.Storage) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var store storage.Storage
	switch cfg.ImageStorage {
	case "minio":
		store, err = storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
	default:
		store, err = storage.NewLocalStorage(cfg.PublicDir)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg)

	return db, repo, services, store
}
