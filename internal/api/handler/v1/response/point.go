package response

import "github.com/coleta-app/coleta-api/internal/domain"

type PointsList struct {
	Status string         `json:"status"`
	List   []domain.Point `json:"list"`
}

func NewPointsList(points []domain.Point) PointsList {
	return PointsList{
		Status: "success",
		List:   points,
	}
}

type PointDetail struct {
	Status string             `json:"status"`
	List   domain.PointDetail `json:"list"`
}

func NewPointDetail(detail domain.PointDetail) PointDetail {
	return PointDetail{
		Status: "success",
		List:   detail,
	}
}
