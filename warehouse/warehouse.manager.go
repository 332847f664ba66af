package warehouse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/app"
	"github.com/RgDivine/recordkeep/repository"
)

// NewManager initialises the warehouse demo with one repository per
// category. The given repository options apply to all of them.
func NewManager(logger alog.Logger, out io.Writer, opts ...repository.Option) *Manager {
	electronics := repository.NewStockRepository[ElectronicItem, ItemID](opts...)
	groceries := repository.NewStockRepository[GroceryItem, ItemID](opts...)

	return &Manager{
		logger:      logger,
		out:         out,
		electronics: electronics,
		groceries:   groceries,

		increaseElectronicsStock: NewIncreaseStockRequestHandler(logger, electronics),
		increaseGroceriesStock:   NewIncreaseStockRequestHandler(logger, groceries),
		removeElectronicItem:     NewRemoveItemCommandHandler(logger, electronics),
		removeGroceryItem:        NewRemoveItemCommandHandler(logger, groceries),
	}
}

// Manager orchestrates the warehouse demo.
// Failures of the demo operations are logged and execution continues,
// so a single bad record never aborts the whole run.
type Manager struct {
	logger alog.Logger
	out    io.Writer

	electronics *repository.StockRepository[ElectronicItem, ItemID]
	groceries   *repository.StockRepository[GroceryItem, ItemID]

	increaseElectronicsStock app.Request[IncreaseStockRequest, IncreaseStockResponse]
	increaseGroceriesStock   app.Request[IncreaseStockRequest, IncreaseStockResponse]
	removeElectronicItem     app.Command[RemoveItemCommand]
	removeGroceryItem        app.Command[RemoveItemCommand]
}

// Seed populates the repositories with sample records.
// Duplicate ids are logged and skipped.
func (m *Manager) Seed(ctx context.Context) {
	electronics := []ElectronicItem{
		{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Lenovo", WarrantyMonths: 24},
		{ID: 2, Name: "Smartphone", Quantity: 25, Brand: "Fairphone", WarrantyMonths: 12},
		{ID: 3, Name: "Tablet", Quantity: 12, Brand: "Samsung", WarrantyMonths: 12},
	}

	groceries := []GroceryItem{
		{ID: 1, Name: "Milk", Quantity: 30, ExpiryDate: time.Now().AddDate(0, 0, 7)},
		{ID: 2, Name: "Rice", Quantity: 40, ExpiryDate: time.Now().AddDate(1, 0, 0)},
	}

	for _, item := range electronics {
		err := m.electronics.Create(ctx, item)
		if err != nil {
			m.logger.InfoContext(ctx, "could not seed electronic item",
				slog.Int("id", int(item.ID)), slog.String("error", err.Error()))
		}
	}

	for _, item := range groceries {
		err := m.groceries.Create(ctx, item)
		if err != nil {
			m.logger.InfoContext(ctx, "could not seed grocery item",
				slog.Int("id", int(item.ID)), slog.String("error", err.Error()))
		}
	}
}

// IncreaseStock raises the quantity of the item by delta and returns the new
// quantity. The item has to exist in the given category.
func (m *Manager) IncreaseStock(ctx context.Context, category Category, id ItemID, delta int) (int, error) {
	req := IncreaseStockRequest{ID: id, Delta: delta}

	var (
		res IncreaseStockResponse
		err error
	)

	switch category {
	case Electronics:
		res, err = m.increaseElectronicsStock.H(ctx, req)
	case Groceries:
		res, err = m.increaseGroceriesStock.H(ctx, req)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	if err != nil {
		return 0, err
	}

	return res.Quantity, nil
}

// RemoveItem deletes the item from the given category.
func (m *Manager) RemoveItem(ctx context.Context, category Category, id ItemID) error {
	cmd := RemoveItemCommand{ID: id}

	switch category {
	case Electronics:
		return m.removeElectronicItem.H(ctx, cmd)
	case Groceries:
		return m.removeGroceryItem.H(ctx, cmd)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
}

// PrintAllItems writes a human readable report of all items to the
// manager's output, grouped by category and in insertion order.
func (m *Manager) PrintAllItems(ctx context.Context) {
	heading := color.New(color.FgBlue, color.Bold).FprintlnFunc()

	heading(m.out, "Electronics")

	electronics, err := m.electronics.All(ctx)
	if err != nil {
		m.logger.InfoContext(ctx, "could not list electronic items", slog.String("error", err.Error()))
	}

	for _, item := range electronics {
		fmt.Fprintf(m.out, "  [%d] %s (%s, %d months warranty) - quantity: %d\n",
			item.ID, item.Name, item.Brand, item.WarrantyMonths, item.Quantity)
	}

	heading(m.out, "Groceries")

	groceries, err := m.groceries.All(ctx)
	if err != nil {
		m.logger.InfoContext(ctx, "could not list grocery items", slog.String("error", err.Error()))
	}

	for _, item := range groceries {
		fmt.Fprintf(m.out, "  [%d] %s (expires %s) - quantity: %d\n",
			item.ID, item.Name, item.ExpiryDate.Format(time.DateOnly), item.Quantity)
	}
}

// RunDemoErrorCases exercises the failure paths on purpose: duplicate add,
// removal of a missing id, and a negative quantity. Each failure is caught
// right at the call site and reported, none of them stop the demo.
func (m *Manager) RunDemoErrorCases(ctx context.Context) {
	failure := color.New(color.FgRed, color.Bold).FprintfFunc()

	err := m.electronics.Create(ctx, ElectronicItem{ID: 1, Name: "Laptop Copy", Quantity: 1})
	if err != nil {
		m.logger.InfoContext(ctx, "adding duplicate item failed", slog.String("error", err.Error()))
		failure(m.out, "could not add item 1 again: %v\n", err)
	}

	err = m.RemoveItem(ctx, Electronics, 999)
	if err != nil {
		m.logger.InfoContext(ctx, "removing missing item failed", slog.String("error", err.Error()))
		failure(m.out, "could not remove item 999: %v\n", err)
	}

	err = m.electronics.UpdateQuantity(ctx, 1, -5)
	if err != nil {
		m.logger.InfoContext(ctx, "negative quantity rejected", slog.String("error", err.Error()))
		failure(m.out, "could not set quantity of item 1 to -5: %v\n", err)
	}
}

// Run performs the complete warehouse demo:
// seed, report, demo mutations, and the deliberate error cases.
func (m *Manager) Run(ctx context.Context) error {
	m.Seed(ctx)
	m.PrintAllItems(ctx)

	quantity, err := m.IncreaseStock(ctx, Electronics, 1, 5)
	if err != nil {
		m.logger.InfoContext(ctx, "could not increase stock", slog.String("error", err.Error()))
	} else {
		fmt.Fprintf(m.out, "increased stock of item 1 to %d\n", quantity)
	}

	err = m.RemoveItem(ctx, Groceries, 2)
	if err != nil {
		m.logger.InfoContext(ctx, "could not remove item", slog.String("error", err.Error()))
	} else {
		fmt.Fprintln(m.out, "removed item 2 from groceries")
	}

	m.RunDemoErrorCases(ctx)
	m.PrintAllItems(ctx)

	return nil
}
