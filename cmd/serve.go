package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/contacts-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/contacts-server/internal/api/grpc/server"
	"github.com/dtroode/contacts-server/internal/config"
	"github.com/dtroode/contacts-server/internal/logger"
	"github.com/dtroode/contacts-server/internal/model"
	"github.com/dtroode/contacts-server/internal/server"
	"github.com/dtroode/contacts-server/internal/service"
)

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger := logger.New(cfg.LogLevel)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	attachments, err := openAttachmentStorage(ctx, cfg)
	if err != nil {
		return err
	}

	contactService := service.NewContact(st.contacts, attachments, logger)
	categoryService := service.NewCategory(st.categories, logger)
	directoryService := service.NewDirectory(st.contacts, st.categories, logger)

	r := router.New(contactService, categoryService, directoryService, logger)
	s := r.Register()
	reflection.Register(s)

	grpcServer := grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "backend", cfg.StoreBackend, "attachments", attachments != nil)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(grpcServer)

	logAppVersion(cmd)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}
