// Package warehouse is a demo application tracking stock of inventory items.
//
// Items are grouped into categories, each category is backed by its own
// repository. Item ids are only unique within their category.
package warehouse

import (
	"errors"
	"time"
)

var ErrUnknownCategory = errors.New("unknown category")

const (
	Electronics = Category("electronics")
	Groceries   = Category("groceries")
)

type (
	Category string

	ItemID int

	ElectronicItem struct {
		ID             ItemID
		Name           string
		Quantity       int
		Brand          string
		WarrantyMonths int
	}

	GroceryItem struct {
		ID         ItemID
		Name       string
		Quantity   int
		ExpiryDate time.Time
	}
)

func (e ElectronicItem) StockQuantity() int {
	return e.Quantity
}

func (e ElectronicItem) WithStockQuantity(quantity int) ElectronicItem {
	e.Quantity = quantity

	return e
}

func (g GroceryItem) StockQuantity() int {
	return g.Quantity
}

func (g GroceryItem) WithStockQuantity(quantity int) GroceryItem {
	g.Quantity = quantity

	return g
}
