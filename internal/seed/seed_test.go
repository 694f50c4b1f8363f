package seed

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

// goldenBase pins the wall clock so every derived timestamp is reproducible.
var goldenBase = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestGeneratorsAreDeterministic(t *testing.T) {
	require.Equal(t, Inventory(75, goldenBase), Inventory(75, goldenBase))
	require.Equal(t, Orders(75, goldenBase), Orders(75, goldenBase))
	require.Equal(t, Tasks(120, goldenBase), Tasks(120, goldenBase))
}

func TestInventoryGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "inventory", renderInventory(Inventory(75, goldenBase)))
}

func TestOrdersGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "orders", renderOrders(Orders(75, goldenBase)))
	g.Assert(t, "order_items", renderOrderItems(OrderItems(5)))
}

func TestTasksGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "tasks", renderTasks(Tasks(120, goldenBase)))
}

func TestInventoryInvariants(t *testing.T) {
	items := Inventory(75, goldenBase)
	require.Len(t, items, 75)

	seen := map[string]bool{}
	for _, it := range items {
		assert.False(t, seen[it.SKU], "duplicate sku %s", it.SKU)
		seen[it.SKU] = true
		assert.GreaterOrEqual(t, it.Price, int64(0))
		assert.GreaterOrEqual(t, it.Stock, int64(0))
		assert.Greater(t, it.WeightGram, 0.0)
	}
}

func TestOrderInvariants(t *testing.T) {
	orders := Orders(75, goldenBase)
	require.Len(t, orders, 75)

	for _, o := range orders {
		assert.Equal(t, model.ItemsTotal(o.Items), o.Total, "order %s total drifted from items", o.Code)
		require.Len(t, o.Items, 5)
		for _, it := range o.Items {
			assert.GreaterOrEqual(t, it.Price, int64(0))
			assert.GreaterOrEqual(t, it.Qty, 1)
		}
	}

	// Codes are monotone and zero-padded to four digits.
	for i, o := range orders {
		assert.Equal(t, fmt.Sprintf("ORD-%04d", i+1), o.Code)
	}
}

func TestTaskOrderCodesStayInRange(t *testing.T) {
	for _, task := range Tasks(120, goldenBase) {
		n, err := strconv.Atoi(strings.TrimPrefix(task.OrderCode, "ORD-"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 75)
	}
}

func renderInventory(items []model.InventoryItem) []byte {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s|%s|%s|%s|%s|%d|%d|%s\n",
			it.SKU, it.Name, it.Category, it.Metal,
			strconv.FormatFloat(it.WeightGram, 'f', 2, 64),
			it.Price, it.Stock, it.UpdatedAt.UTC().Format(time.RFC3339))
	}
	return []byte(b.String())
}

func renderOrders(orders []model.Order) []byte {
	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "%s|%s|%s|%d|%s|%s\n",
			o.Code, o.CustomerName, o.Status, o.Total,
			o.CreatedAt.UTC().Format(time.RFC3339), o.UpdatedAt.UTC().Format(time.RFC3339))
	}
	return []byte(b.String())
}

func renderOrderItems(items []model.OrderItem) []byte {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s|%d|%d\n", it.Name, it.Price, it.Qty)
	}
	return []byte(b.String())
}

func renderTasks(tasks []model.Task) []byte {
	var b strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&b, "%s|%s|%s|%s|%s\n",
			task.Title, task.OrderCode, task.Role, task.Status,
			task.UpdatedAt.UTC().Format(time.RFC3339))
	}
	return []byte(b.String())
}
