package router

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/audit"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/config"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/middleware"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/query"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/store"
)

// Setup registers all HTTP routes. Mutation endpoints go through the Redis
// rate limiter; every route gets a request id.
func Setup(r *gin.Engine, st *store.Store, rdb *rd.Client, rec audit.Recorder, cfg config.AppConfig) {
	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "pong"})
	})

	// Listings
	r.GET("/api/inventory", listInventory(st))
	r.GET("/api/orders", listOrders(st))
	r.GET("/api/tasks", listTasks(st))

	// Orders
	rate := middleware.RedisRateLimit(rdb, cfg.MutateRateLimit, cfg.MutateRateWindow)
	r.GET("/api/orders/:id", getOrder(st))
	r.GET("/api/orders/:id/audit", getOrderAudit(st))
	r.POST("/api/orders", rate, createOrder(st, rec))
	r.POST("/api/orders/:id/status", rate, updateOrderStatus(st, rec))
}

// listQuery is the part of a listing request shared by every domain. Seq is
// an opaque client token echoed back in the page so a screen can discard
// responses that an in-flight newer request has superseded.
type listQuery struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=10" binding:"min=1,max=100"`
	Search   string `form:"search"`
	SortDir  string `form:"sort_dir,default=desc" binding:"oneof=asc desc"`
	Seq      int64  `form:"seq"`
}

func (q listQuery) request(sortBy string) query.Request {
	return query.Request{
		Page:     q.Page,
		PageSize: q.PageSize,
		Search:   q.Search,
		SortBy:   sortBy,
		SortDir:  query.SortDir(q.SortDir),
		Seq:      q.Seq,
	}
}

func listInventory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			listQuery
			Category string `form:"category,default=all" binding:"oneof=all ring necklace bracelet earring pendant"`
			Metal    string `form:"metal,default=all" binding:"oneof=all gold silver platinum"`
			SortBy   string `form:"sort_by,default=updatedAt" binding:"oneof=name price stock updatedAt"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		items, err := st.Inventory(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}

		filters := []query.Filter[model.InventoryItem]{
			{Value: q.Category, Field: func(it model.InventoryItem) string { return string(it.Category) }},
			{Value: q.Metal, Field: func(it model.InventoryItem) string { return string(it.Metal) }},
		}
		page := query.Run(items, q.request(q.SortBy), filters, query.InventoryDescriptor)
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": page})
	}
}

func listOrders(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			listQuery
			Status string `form:"status,default=all" binding:"oneof=all draft ongoing completed cancelled"`
			SortBy string `form:"sort_by,default=updatedAt" binding:"oneof=updatedAt total customerName"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		orders, err := st.Orders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}

		filters := []query.Filter[model.Order]{
			{Value: q.Status, Field: func(o model.Order) string { return string(o.Status) }},
		}
		page := query.Run(orders, q.request(q.SortBy), filters, query.OrderDescriptor)
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": page})
	}
}

func listTasks(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			listQuery
			Role   string `form:"role,default=all" binding:"oneof=all designer carver caster diamondsetter finisher"`
			Status string `form:"status,default=all" binding:"oneof=all assigned in-progress checked verified done"`
			SortBy string `form:"sort_by,default=updatedAt" binding:"oneof=updatedAt orderCode title"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		tasks, err := st.Tasks(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}

		filters := []query.Filter[model.Task]{
			{Value: q.Role, Field: func(t model.Task) string { return string(t.Role) }},
			{Value: q.Status, Field: func(t model.Task) string { return string(t.Status) }},
		}
		page := query.Run(tasks, q.request(q.SortBy), filters, query.TaskDescriptor)
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": page})
	}
}

func getOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		o, err := st.Order(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": o})
	}
}

func getOrderAudit(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		if _, err := st.Order(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		entries, err := st.OrderAudit(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": entries})
	}
}

func createOrder(st *store.Store, rec audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CustomerName string `json:"customer_name" binding:"required"`
			Note         string `json:"note"`
			Items        []struct {
				Name  string `json:"name" binding:"required"`
				Price int64  `json:"price" binding:"min=0"`
				Qty   int    `json:"qty" binding:"required,min=1"`
			} `json:"items" binding:"required,min=1,dive"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		items := make([]model.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, model.OrderItem{Name: it.Name, Price: it.Price, Qty: it.Qty})
		}

		o, err := st.CreateOrder(c.Request.Context(), req.CustomerName, items)
		if err != nil {
			respondError(c, err)
			return
		}

		record(c, rec, audit.OrderCreated(o, req.Note))
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": o})
	}
}

func updateOrderStatus(st *store.Store, rec audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var req struct {
			Status string `json:"status" binding:"required,oneof=draft ongoing completed cancelled"`
			Note   string `json:"note"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		o, from, err := st.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}

		if from != o.Status {
			record(c, rec, audit.OrderStatusChanged(o, from, req.Note))
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": o})
	}
}

// record appends an audit event best-effort. The store write already
// committed, so failures are logged, never surfaced to the client.
func record(c *gin.Context, rec audit.Recorder, e audit.Event) {
	if rec == nil {
		return
	}
	if err := rec.Record(c.Request.Context(), e); err != nil {
		log.Printf("audit record %s: %v", e.Kind, err)
	}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "invalid order id"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": err.Error()})
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
	}
}
