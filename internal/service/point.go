package service

import (
	"context"
	"fmt"

	"github.com/coleta-app/coleta-api/internal/domain"
	"github.com/coleta-app/coleta-api/internal/repository"
)

var (
	ErrPointNotFound = repository.ErrPointNotFound
	ErrUnknownItem   = repository.ErrUnknownItem
)

// placeholderImage is attached to every created point. There is no upload
// subsystem; the reference is fixed.
const placeholderImage = "https://images.unsplash.com/photo-1583258292688-d0213dc5a3a8?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60"

type PointRepository interface {
	Create(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error)
	FindByFilter(ctx context.Context, filter domain.PointFilter) ([]domain.Point, error)
	GetByID(ctx context.Context, id uint) (domain.Point, error)
	GetItemTitles(ctx context.Context, pointID uint) ([]string, error)
}

type PointService struct {
	repo PointRepository
}

func NewPointService(repo PointRepository) *PointService {
	return &PointService{
		repo: repo,
	}
}

// CreatePoint persists the point and its item associations atomically.
// An empty itemIDs slice is valid and creates no associations. Field values
// are accepted as-is; the permissive defaults of the registration form
// ((0,0) coordinates, uf "0") are persisted unchanged.
func (s *PointService) CreatePoint(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error) {
	point.Image = placeholderImage

	created, err := s.repo.Create(ctx, point, itemIDs)
	if err != nil {
		return domain.Point{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListPoints returns the distinct points matching the filter. An empty match
// is reported as ErrPointNotFound so callers can render a structured
// not-found result.
func (s *PointService) ListPoints(ctx context.Context, filter domain.PointFilter) ([]domain.Point, error) {
	points, err := s.repo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByFilter -> %w", err)
	}

	if len(points) == 0 {
		return nil, ErrPointNotFound
	}

	return points, nil
}

func (s *PointService) GetPointDetail(ctx context.Context, id uint) (domain.PointDetail, error) {
	point, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.PointDetail{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	titles, err := s.repo.GetItemTitles(ctx, id)
	if err != nil {
		return domain.PointDetail{}, fmt.Errorf("s.repo.GetItemTitles -> %w", err)
	}

	return domain.PointDetail{
		Point: point,
		Items: titles,
	}, nil
}
