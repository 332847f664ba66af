package warehouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/app"
	"github.com/RgDivine/recordkeep/repository"
)

var ErrIncreaseStockFailed = errors.New("increase stock failed")

func NewIncreaseStockRequestHandler[E repository.Quantified[E]](
	logger alog.Logger,
	repo *repository.StockRepository[E, ItemID],
) app.Request[IncreaseStockRequest, IncreaseStockResponse] {
	return app.NewLoggedRequest(logger,
		app.NewValidatedRequest[IncreaseStockRequest, IncreaseStockResponse](nil, &increaseStockRequestHandler[E]{repo: repo}),
	)
}

type increaseStockRequestHandler[E repository.Quantified[E]] struct {
	repo *repository.StockRepository[E, ItemID]
}

type (
	IncreaseStockRequest struct {
		ID    ItemID `validate:"required"`
		Delta int
	}

	IncreaseStockResponse struct {
		Quantity int
	}
)

func (h *increaseStockRequestHandler[E]) H(
	ctx context.Context,
	req IncreaseStockRequest,
) (IncreaseStockResponse, error) {
	item, err := h.repo.FindByID(ctx, req.ID)
	if err != nil {
		return IncreaseStockResponse{}, fmt.Errorf("%w: %w", ErrIncreaseStockFailed, err)
	}

	quantity := item.StockQuantity() + req.Delta

	err = h.repo.UpdateQuantity(ctx, req.ID, quantity)
	if err != nil {
		return IncreaseStockResponse{}, fmt.Errorf("%w: %w", ErrIncreaseStockFailed, err)
	}

	return IncreaseStockResponse{Quantity: quantity}, nil
}
