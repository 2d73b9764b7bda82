package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coleta-app/coleta-api/internal/api/handler/v1/request"
	"github.com/coleta-app/coleta-api/internal/api/handler/v1/response"
	"github.com/coleta-app/coleta-api/internal/domain"
	"github.com/coleta-app/coleta-api/internal/service"
)

type PointService interface {
	CreatePoint(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error)
	ListPoints(ctx context.Context, filter domain.PointFilter) ([]domain.Point, error)
	GetPointDetail(ctx context.Context, id uint) (domain.PointDetail, error)
}

type PointHandler struct {
	svc PointService
}

func NewPointHandler(svc PointService) *PointHandler {
	return &PointHandler{
		svc: svc,
	}
}

// HandleCreatePoint godoc
// @Summary      Register a collection point
// @Description  Creates a point and its item associations in one transaction
// @Tags         points
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePointRequest  true  "point payload"
// @Success      201    {object}  domain.Point
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /points [post]
func (h *PointHandler) HandleCreatePoint(ctx *gin.Context) {
	var req request.CreatePointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	point := domain.Point{
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		City:      req.City,
		UF:        req.UF,
	}

	created, err := h.svc.CreatePoint(ctx.Request.Context(), point, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrUnknownItem) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnknownItem))
			return
		}

		err = fmt.Errorf("v1.HandleCreatePoint -> h.svc.CreatePoint -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListPoints godoc
// @Summary      List collection points
// @Description  Filters points by exact city/uf match and any of the given item ids
// @Tags         points
// @Produce      json
// @Param        city   query     string  true  "city name"
// @Param        uf     query     string  true  "region (UF)"
// @Param        items  query     string  true  "comma-joined item ids, e.g. 1,2"
// @Success      200    {object}  response.PointsList
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /points [get]
func (h *PointHandler) HandleListPoints(ctx *gin.Context) {
	var req request.ListPointsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	itemIDs, err := req.ParseItemIDs()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	points, err := h.svc.ListPoints(ctx.Request.Context(), domain.PointFilter{
		City:    req.City,
		UF:      req.UF,
		ItemIDs: itemIDs,
	})
	if err != nil {
		if errors.Is(err, service.ErrPointNotFound) {
			response.RenderErr(ctx, response.ErrNotFoundMsg("points not found with filters"))
			return
		}

		err = fmt.Errorf("v1.HandleListPoints -> h.svc.ListPoints -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPointsList(points))
}

// HandleGetPoint godoc
// @Summary      Get a collection point
// @Description  Returns the point and the titles of its associated items
// @Tags         points
// @Produce      json
// @Param        id   path      int  true  "point id"
// @Success      200  {object}  response.PointDetail
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /points/{id} [get]
func (h *PointHandler) HandleGetPoint(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid point id -> %w", err)))
		return
	}

	detail, err := h.svc.GetPointDetail(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPointNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("point", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetPoint -> h.svc.GetPointDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPointDetail(detail))
}
