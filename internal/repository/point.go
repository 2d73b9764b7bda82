package repository

import (
	"context"
	"fmt"

	"github.com/coleta-app/coleta-api/internal/domain"
	"github.com/coleta-app/coleta-api/internal/repository/dao"
)

var (
	ErrPointNotFound = dao.ErrPointNotFound
	ErrUnknownItem   = dao.ErrUnknownItem
)

type PointDAO interface {
	Insert(ctx context.Context, point dao.Point, itemIDs []uint) (dao.Point, error)
	FindByFilter(ctx context.Context, city, uf string, itemIDs []uint) ([]dao.Point, error)
	GetByID(ctx context.Context, id uint) (dao.Point, error)
	FindItemTitles(ctx context.Context, pointID uint) ([]string, error)
}

type PointRepository struct {
	dao PointDAO
}

func NewPointRepository(dao PointDAO) *PointRepository {
	return &PointRepository{
		dao: dao,
	}
}

func (r *PointRepository) domainToDao(p domain.Point) dao.Point {
	return dao.Point{
		ID:        p.ID,
		Image:     p.Image,
		Name:      p.Name,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      p.City,
		UF:        p.UF,
	}
}

func (r *PointRepository) daoToDomain(p dao.Point) domain.Point {
	return domain.Point{
		ID:        p.ID,
		Image:     p.Image,
		Name:      p.Name,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      p.City,
		UF:        p.UF,
	}
}

func (r *PointRepository) Create(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(point), itemIDs)
	if err != nil {
		return domain.Point{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PointRepository) FindByFilter(ctx context.Context, filter domain.PointFilter) ([]domain.Point, error) {
	found, err := r.dao.FindByFilter(ctx, filter.City, filter.UF, filter.ItemIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFilter -> %w", err)
	}

	points := make([]domain.Point, 0, len(found))
	for _, p := range found {
		points = append(points, r.daoToDomain(p))
	}

	return points, nil
}

func (r *PointRepository) GetByID(ctx context.Context, id uint) (domain.Point, error) {
	point, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Point{}, fmt.Errorf("r.dao.GetByID -> %w", err)
	}

	return r.daoToDomain(point), nil
}

func (r *PointRepository) GetItemTitles(ctx context.Context, pointID uint) ([]string, error) {
	titles, err := r.dao.FindItemTitles(ctx, pointID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindItemTitles -> %w", err)
	}

	return titles, nil
}
