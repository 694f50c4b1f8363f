package query

import (
	"cmp"
	"strings"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

// Sort field names per domain. These are the only values the HTTP layer
// accepts, so the descriptors below cover them exhaustively.
const (
	SortByName         = "name"
	SortByPrice        = "price"
	SortByStock        = "stock"
	SortByUpdatedAt    = "updatedAt"
	SortByTotal        = "total"
	SortByCustomerName = "customerName"
	SortByOrderCode    = "orderCode"
	SortByTitle        = "title"
)

// InventoryDescriptor drives inventory listings: search by name or SKU, sort
// by name, price, stock or updatedAt.
var InventoryDescriptor = Descriptor[model.InventoryItem]{
	Search: []func(model.InventoryItem) string{
		func(it model.InventoryItem) string { return it.Name },
		func(it model.InventoryItem) string { return it.SKU },
	},
	Sort: map[string]func(a, b model.InventoryItem) int{
		SortByName:      func(a, b model.InventoryItem) int { return strings.Compare(a.Name, b.Name) },
		SortByPrice:     func(a, b model.InventoryItem) int { return cmp.Compare(a.Price, b.Price) },
		SortByStock:     func(a, b model.InventoryItem) int { return cmp.Compare(a.Stock, b.Stock) },
		SortByUpdatedAt: func(a, b model.InventoryItem) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
	},
}

// OrderDescriptor drives order listings: search by code or customer name,
// sort by updatedAt, total or customer name.
var OrderDescriptor = Descriptor[model.Order]{
	Search: []func(model.Order) string{
		func(o model.Order) string { return o.Code },
		func(o model.Order) string { return o.CustomerName },
	},
	Sort: map[string]func(a, b model.Order) int{
		SortByUpdatedAt:    func(a, b model.Order) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
		SortByTotal:        func(a, b model.Order) int { return cmp.Compare(a.Total, b.Total) },
		SortByCustomerName: func(a, b model.Order) int { return strings.Compare(a.CustomerName, b.CustomerName) },
	},
}

// TaskDescriptor drives task listings: search by title or order code, sort by
// updatedAt, order code or title.
var TaskDescriptor = Descriptor[model.Task]{
	Search: []func(model.Task) string{
		func(t model.Task) string { return t.Title },
		func(t model.Task) string { return t.OrderCode },
	},
	Sort: map[string]func(a, b model.Task) int{
		SortByUpdatedAt: func(a, b model.Task) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
		SortByOrderCode: func(a, b model.Task) int { return strings.Compare(a.OrderCode, b.OrderCode) },
		SortByTitle:     func(a, b model.Task) int { return strings.Compare(a.Title, b.Title) },
	},
}
