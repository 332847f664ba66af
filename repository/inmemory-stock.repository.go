package repository

import (
	"context"
	"fmt"
)

// NewStockRepository returns a MemoryRepository extended for entities that
// carry a stock quantity, e.g. inventory items of a warehouse.
func NewStockRepository[E Quantified[E], ID id](opts ...Option) *StockRepository[E, ID] {
	return &StockRepository[E, ID]{
		MemoryRepository: NewMemoryRepository[E, ID](opts...),
	}
}

// StockRepository extends MemoryRepository for Quantified entities.
type StockRepository[E Quantified[E], ID id] struct {
	*MemoryRepository[E, ID]
}

// UpdateQuantity sets the stock quantity of the entity with the given id.
//
// The quantity is validated before the entity is looked up: a negative
// quantity fails with ErrInvalidQuantity even if the id does not exist.
// A valid quantity for an absent id fails with ErrNotFound.
func (repo *StockRepository[E, ID]) UpdateQuantity(_ context.Context, id ID, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	repo.Lock()
	defer repo.Unlock()

	entity, found := repo.Data[id]
	if !found {
		return fmt.Errorf("%w: id %v", ErrNotFound, id)
	}

	repo.Data[id] = entity.WithStockQuantity(quantity)

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data[id] = entity

		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}
