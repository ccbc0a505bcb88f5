package services

import (
	"context"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"
)

// ItemStore is the persistence surface for the catalog.
type ItemStore interface {
	Create(ctx context.Context, item model.InternetItem) (*model.InternetItem, error)
	List(ctx context.Context) ([]model.InternetItem, error)
	ListByCategory(ctx context.Context, category string) ([]model.InternetItem, error)
}

type ItemService struct {
	Repo ItemStore
}

func NewItemService(r ItemStore) *ItemService {
	return &ItemService{Repo: r}
}

// List returns the whole catalog, or the case-insensitive category subset
// when a filter is supplied.
func (s *ItemService) List(ctx context.Context, category string) ([]model.InternetItem, error) {
	if category != "" {
		return s.Repo.ListByCategory(ctx, category)
	}
	return s.Repo.List(ctx)
}

// Add persists a catalog item. No validation beyond what storage enforces.
func (s *ItemService) Add(ctx context.Context, item model.InternetItem) (*model.InternetItem, error) {
	return s.Repo.Create(ctx, item)
}
