package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrPointNotFound = errors.New("point not found")
	ErrUnknownItem   = errors.New("unknown item id")
)

type Point struct {
	ID        uint    `gorm:"primaryKey"`
	Image     string  `gorm:"not null"`
	Name      string  `gorm:"not null"`
	Email     string  `gorm:"not null"`
	Whatsapp  string  `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	City      string  `gorm:"not null"`
	UF        string  `gorm:"column:uf;not null"`
}

type PointItem struct {
	ID      uint  `gorm:"primaryKey"`
	PointID uint  `gorm:"not null;index"`
	Point   Point `gorm:"foreignKey:PointID"`
	ItemID  uint  `gorm:"not null"`
	Item    Item  `gorm:"foreignKey:ItemID"`
}

func (PointItem) TableName() string {
	return "points_items"
}

type PointDAO struct {
	db *gorm.DB
}

func NewPointDAO(db *gorm.DB) *PointDAO {
	return &PointDAO{
		db: db,
	}
}

// Insert creates the point row and one join row per item id inside a single
// transaction. A failing join insert rolls back the point insert too.
func (d *PointDAO) Insert(ctx context.Context, point Point, itemIDs []uint) (Point, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&point); result.Error != nil {
			return result.Error
		}

		if len(itemIDs) == 0 {
			return nil
		}

		pointItems := make([]PointItem, 0, len(itemIDs))
		for _, itemID := range itemIDs {
			pointItems = append(pointItems, PointItem{
				PointID: point.ID,
				ItemID:  itemID,
			})
		}

		if result := tx.Create(&pointItems); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return Point{}, ErrUnknownItem
		}

		return Point{}, err
	}

	return point, nil
}

// FindByFilter matches city and uf exactly and keeps points having at least
// one join row for any of the given item ids.
func (d *PointDAO) FindByFilter(ctx context.Context, city, uf string, itemIDs []uint) ([]Point, error) {
	var points []Point
	result := d.db.WithContext(ctx).
		Model(&Point{}).
		Distinct("points.*").
		Joins("LEFT JOIN points_items ON points.id = points_items.point_id").
		Where("points_items.item_id IN ?", itemIDs).
		Where("points.city = ?", city).
		Where("points.uf = ?", uf).
		Find(&points)
	if result.Error != nil {
		return nil, result.Error
	}

	return points, nil
}

func (d *PointDAO) GetByID(ctx context.Context, id uint) (Point, error) {
	var point Point
	result := d.db.WithContext(ctx).First(&point, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Point{}, ErrPointNotFound
		}

		return Point{}, result.Error
	}

	return point, nil
}

// FindItemTitles returns the titles of the items collected at the point.
// A point with no join rows yields an empty slice, not an error.
func (d *PointDAO) FindItemTitles(ctx context.Context, pointID uint) ([]string, error) {
	titles := make([]string, 0)
	result := d.db.WithContext(ctx).
		Model(&Item{}).
		Joins("JOIN points_items ON items.id = points_items.item_id").
		Where("points_items.point_id = ?", pointID).
		Pluck("items.title", &titles)
	if result.Error != nil {
		return nil, result.Error
	}

	return titles, nil
}
