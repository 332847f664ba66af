package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var errStoreFailed = errors.New("store failed")

var (
	ctx           = context.Background()
	defaultEntity = testEntity()
)

func testEntity() Entity {
	return Entity{
		ID:   EntityID(uuid.New().String()),
		Name: gofakeit.Name(),
	}
}

func testItem() Item {
	return Item{
		ID:       ItemID(gofakeit.Number(1, 1<<31)),
		Name:     gofakeit.ProductName(),
		Quantity: gofakeit.Number(0, 1000),
	}
}

type (
	EntityID string
	Entity   struct {
		ID   EntityID
		Name string
	}

	// Item carries a stock quantity, for the StockRepository tests.
	ItemID int
	Item   struct {
		ID       ItemID
		Name     string
		Quantity int
	}
)

func (i Item) StockQuantity() int {
	return i.Quantity
}

func (i Item) WithStockQuantity(quantity int) Item {
	i.Quantity = quantity

	return i
}

type EntityWithoutID struct {
	Name string
}

type testStore struct {
	load  func(filename string, data any) error
	store func(filename string, data any) error
}

func (s testStore) Load(filename string, data any) error {
	return s.load(filename, data)
}

func (s testStore) Store(filename string, data any) error {
	return s.store(filename, data)
}

func testStoreLoadFails() testStore {
	return testStore{
		load: func(_ string, _ any) error {
			return errStoreFailed
		},
		store: func(_ string, _ any) error {
			return nil
		},
	}
}

func testStoreStoreFails() testStore {
	return testStore{
		load: func(_ string, _ any) error {
			return nil
		},
		store: func(_ string, _ any) error {
			return errStoreFailed
		},
	}
}

// testStoreFailsAfter returns a store whose first n Store calls succeed and
// every later one fails, to test the rollback of a single operation.
func testStoreFailsAfter(n int) testStore {
	calls := 0

	return testStore{
		load: func(_ string, _ any) error {
			return nil
		},
		store: func(_ string, _ any) error {
			calls++
			if calls > n {
				return errStoreFailed
			}

			return nil
		},
	}
}

func testStoreSuccessEntity(t *testing.T) testStore {
	t.Helper()

	return testStore{
		load: func(filename string, data any) error {
			assert.Equal(t, "Entity.json", filename)
			assert.NotNil(t, data)

			return nil
		},
		store: func(filename string, data any) error {
			assert.Equal(t, "Entity.json", filename)
			assert.NotNil(t, data)

			return nil
		},
	}
}
