package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/contacts-server/internal/logger"
	"github.com/dtroode/contacts-server/internal/model"
	"github.com/dtroode/contacts-server/internal/pipeline"
)

// Directory builds read-only summaries spanning contacts and categories.
type Directory struct {
	contactStore  model.ContactStore
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

func NewDirectory(contactStore model.ContactStore, categoryStore model.CategoryStore, logger *logger.Logger) *Directory {
	return &Directory{
		contactStore:  contactStore,
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// Overview loads both collections concurrently. The first failure cancels the other load.
func (s *Directory) Overview(ctx context.Context) (model.Overview, error) {
	var (
		contacts   []model.Contact
		categories []model.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.contactStore.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get contacts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryStore.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Overview{}, err
	}

	s.logger.Debug("Directory service: overview built", "contacts", len(contacts), "categories", len(categories))

	return model.Overview{
		Stats:      pipeline.Summarize(contacts),
		Letters:    pipeline.AvailableLetters(contacts),
		Colors:     pipeline.ColorsByName(categories),
		Categories: categories,
	}, nil
}
