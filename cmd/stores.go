package main

import (
	"context"
	"fmt"

	"github.com/dtroode/contacts-server/internal/config"
	"github.com/dtroode/contacts-server/internal/database"
	"github.com/dtroode/contacts-server/internal/fixtures"
	"github.com/dtroode/contacts-server/internal/logger"
	"github.com/dtroode/contacts-server/internal/model"
	"github.com/dtroode/contacts-server/internal/repository/hosted"
	"github.com/dtroode/contacts-server/internal/repository/memory"
	"github.com/dtroode/contacts-server/internal/repository/postgres"
	storage "github.com/dtroode/contacts-server/internal/storage/minio"
	"github.com/dtroode/contacts-server/internal/token"
)

type stores struct {
	contacts   model.ContactStore
	categories model.CategoryStore
	close      func()
}

func openStores(ctx context.Context, cfg *config.Config, lg *logger.Logger) (stores, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, lg.With("backend", cfg.StoreBackend))
	case config.BackendHosted:
		return openHosted(cfg), nil
	default:
		return openMemory()
	}
}

func openMemory() (stores, error) {
	contacts, err := fixtures.Contacts()
	if err != nil {
		return stores{}, err
	}
	categories, err := fixtures.Categories()
	if err != nil {
		return stores{}, err
	}

	return stores{
		contacts:   memory.NewContactRepository(contacts...),
		categories: memory.NewCategoryRepository(categories...),
		close:      func() {},
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, lg *logger.Logger) (stores, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return stores{}, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if cfg.Database.Seed {
		if err := seedPostgres(ctx, cfg.Database.DSN, lg); err != nil {
			_ = conn.Close()
			return stores{}, err
		}
	}

	return stores{
		contacts:   postgres.NewContactRepository(conn),
		categories: postgres.NewCategoryRepository(conn),
		close:      func() { _ = conn.Close() },
	}, nil
}

func seedPostgres(ctx context.Context, dsn string, lg *logger.Logger) error {
	db, err := database.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	contacts, err := fixtures.Contacts()
	if err != nil {
		return err
	}
	categories, err := fixtures.Categories()
	if err != nil {
		return err
	}

	seeded, err := database.Seed(ctx, db, contacts, categories)
	if err != nil {
		return err
	}
	lg.Info("database seed checked", "seeded", seeded)
	return nil
}

func openHosted(cfg *config.Config) stores {
	var tokens hosted.TokenSource
	if cfg.Hosted.Secret != "" {
		tokens = token.NewJWT(cfg.Hosted.ProjectID, cfg.Hosted.Secret, 0)
	}
	client := hosted.NewHTTPClient(cfg.Hosted.BaseURL, cfg.Hosted.Timeout, tokens)

	return stores{
		contacts:   hosted.NewContactRepository(client),
		categories: hosted.NewCategoryRepository(client),
		close:      func() {},
	}
}

// openAttachmentStorage returns nil when object storage is disabled.
func openAttachmentStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	store, err := storage.Connect(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize attachment storage: %w", err)
	}
	return store, nil
}
