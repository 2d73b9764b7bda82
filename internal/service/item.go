package service

import (
	"context"
	"fmt"

	"github.com/coleta-app/coleta-api/internal/domain"
)

type ItemRepository interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
}

type ItemService struct {
	repo           ItemRepository
	uploadsBaseURL string
}

func NewItemService(repo ItemRepository, uploadsBaseURL string) *ItemService {
	return &ItemService{
		repo:           repo,
		uploadsBaseURL: uploadsBaseURL,
	}
}

// GetItems returns the catalog with each image file name expanded into a
// public URL under the configured uploads base.
func (s *ItemService) GetItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	for i := range items {
		items[i].ImageURL = fmt.Sprintf("%v/%v", s.uploadsBaseURL, items[i].ImageURL)
	}

	return items, nil
}
