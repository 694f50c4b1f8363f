// Package seed generates the deterministic demo dataset.
//
// Every derived field is a pure function of the record index: randomness comes
// from frac(sin(seed)*10000) with a fixed per-domain seed multiplier, so the
// same count and base time always reproduce byte-identical records. Tests rely
// on this to pin generator output against golden files.
package seed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

// Default record counts for a fresh store.
const (
	DefaultInventory = 75
	DefaultOrders    = 75
	DefaultTasks     = 120
)

// rand01 maps an integer seed into [0,1).
func rand01(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// Inventory generates n stock items. Prices are whole rupiah, weights rounded
// to two decimals, updatedAt walks back one day per index from base.
func Inventory(n int, base time.Time) []model.InventoryItem {
	items := make([]model.InventoryItem, 0, n)
	for i := 1; i <= n; i++ {
		cat := model.Categories[i%len(model.Categories)]
		metal := model.Metals[i%len(model.Metals)]
		r := rand01(i)
		items = append(items, model.InventoryItem{
			SKU:        fmt.Sprintf("SKU-%04d", i),
			Name:       fmt.Sprintf("%s %s %d", strings.ToUpper(string(metal)), cat, i),
			Category:   cat,
			Metal:      metal,
			WeightGram: math.Round((r*10+1)*100) / 100,
			Price:      int64(math.Round((r*500 + 100) * 1000)),
			Stock:      int64(math.Floor(r * 20)),
			UpdatedAt:  base.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	return items
}

// OrderItems generates the n-line item template shared by every seeded order.
func OrderItems(n int) []model.OrderItem {
	items := make([]model.OrderItem, 0, n)
	for i := 1; i <= n; i++ {
		r := rand01(i * 7)
		qty := int(math.Floor(r * 3))
		if qty < 1 {
			qty = 1
		}
		items = append(items, model.OrderItem{
			Name:  fmt.Sprintf("Item %d", i),
			Price: int64(math.Round((r*500 + 50) * 1000)),
			Qty:   qty,
		})
	}
	return items
}

// Orders generates n orders, each carrying a copy of the five-line item
// template. Pos mirrors the index so seeded orders snapshot in seed order.
func Orders(n int, base time.Time) []model.Order {
	template := OrderItems(5)
	orders := make([]model.Order, 0, n)
	for i := 1; i <= n; i++ {
		r := rand01(i * 13)
		items := make([]model.OrderItem, len(template))
		copy(items, template)
		orders = append(orders, model.Order{
			Code:         fmt.Sprintf("ORD-%04d", i),
			CustomerName: fmt.Sprintf("Customer %d", int(math.Floor(r*50))+1),
			Items:        items,
			Total:        model.ItemsTotal(items),
			Status:       model.OrderStatuses[i%len(model.OrderStatuses)],
			Pos:          int64(i),
			CreatedAt:    base.Add(-time.Duration(i) * 24 * time.Hour),
			UpdatedAt:    base.Add(-time.Duration(i) * 12 * time.Hour),
		})
	}
	return orders
}

// Tasks generates n production tasks. Order codes reference the first 75
// seeded orders; updatedAt walks back one hour per index from base.
func Tasks(n int, base time.Time) []model.Task {
	tasks := make([]model.Task, 0, n)
	for i := 1; i <= n; i++ {
		r := rand01(i * 17)
		tasks = append(tasks, model.Task{
			Title:     fmt.Sprintf("Work on piece %d", int(math.Floor(r*100))),
			OrderCode: fmt.Sprintf("ORD-%04d", int(math.Floor(r*75))+1),
			Role:      model.WorkerRoles[i%len(model.WorkerRoles)],
			Status:    model.TaskStatuses[i%len(model.TaskStatuses)],
			UpdatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return tasks
}
