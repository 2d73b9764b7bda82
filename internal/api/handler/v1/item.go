package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coleta-app/coleta-api/internal/api/handler/v1/response"
	"github.com/coleta-app/coleta-api/internal/domain"
)

type ItemService interface {
	GetItems(ctx context.Context) ([]domain.Item, error)
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleGetItems godoc
// @Summary      Get the item catalog
// @Description  Returns every collectable category with its public image URL
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      500  {object}  response.Err
// @Router       /items [get]
func (h *ItemHandler) HandleGetItems(ctx *gin.Context) {
	items, err := h.svc.GetItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetItems -> h.svc.GetItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}
