package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/service"
)

// OrderHandler exposes the sales order endpoints.
type OrderHandler struct {
	service *service.OrderService
}

func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/paged", h.ListPaged)
		orders.GET("/count", h.Count)
		orders.GET("/:id", h.Get)
		orders.GET("/customer/:customerId", h.ListByCustomer)
		orders.GET("/status/:status", h.ListByStatus)
		orders.POST("", h.Create)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func (h *OrderHandler) ListPaged(c *gin.Context) {
	req := parsePageRequest(c, model.OrderDefaultSort, "desc")
	result, err := h.service.ListPaged(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	writePaginationHeaders(c, result)
	respondOK(c, result)
}

func (h *OrderHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": count})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}
	orders, err := h.service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func (h *OrderHandler) ListByStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		respondBadRequest(c, "invalid status")
		return
	}
	orders, err := h.service.ListByStatus(c.Request.Context(), int16(status))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var order model.SalesOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &order)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, created)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var order model.SalesOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if order.SalesOrderID != 0 && order.SalesOrderID != id {
		respondBadRequest(c, "order id in path does not match request body")
		return
	}
	order.SalesOrderID = id

	updated, err := h.service.Update(c.Request.Context(), &order)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, updated)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id})
}
