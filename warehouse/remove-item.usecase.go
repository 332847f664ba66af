package warehouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/app"
	"github.com/RgDivine/recordkeep/repository"
)

var ErrRemoveItemFailed = errors.New("remove item failed")

func NewRemoveItemCommandHandler[E repository.Quantified[E]](
	logger alog.Logger,
	repo *repository.StockRepository[E, ItemID],
) app.Command[RemoveItemCommand] {
	return app.NewLoggedCommand(logger,
		app.NewValidatedCommand[RemoveItemCommand](nil, &removeItemCommandHandler[E]{repo: repo}),
	)
}

type removeItemCommandHandler[E repository.Quantified[E]] struct {
	repo *repository.StockRepository[E, ItemID]
}

type RemoveItemCommand struct {
	ID ItemID `validate:"required"`
}

func (h *removeItemCommandHandler[E]) H(ctx context.Context, cmd RemoveItemCommand) error {
	err := h.repo.DeleteByID(ctx, cmd.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoveItemFailed, err)
	}

	return nil
}
