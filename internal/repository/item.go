package repository

import (
	"context"
	"fmt"

	"github.com/coleta-app/coleta-api/internal/domain"
	"github.com/coleta-app/coleta-api/internal/repository/dao"
)

type ItemDAO interface {
	FindAll(ctx context.Context) ([]dao.Item, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

// FindAll returns the catalog with ImageURL left as the stored file name;
// the service composes the public URL.
func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, item := range found {
		items = append(items, domain.Item{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: item.Image,
		})
	}

	return items, nil
}
