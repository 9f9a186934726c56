package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/service"
)

// ProductHandler exposes the product and inventory endpoints.
type ProductHandler struct {
	products  *service.ProductService
	inventory *service.InventoryService
}

func NewProductHandler(products *service.ProductService, inventory *service.InventoryService) *ProductHandler {
	return &ProductHandler{products: products, inventory: inventory}
}

func (h *ProductHandler) RegisterRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/paged", h.ListPaged)
		products.GET("/inventory", h.ListInventory)
		products.GET("/inventory/paged", h.ListInventoryPaged)
		products.GET("/:id", h.Get)
		products.GET("/:id/inventory", h.ProductInventory)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.PUT("/:id/inventory/:locationId", h.UpdateQuantity)
		products.DELETE("/:id", h.Delete)
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, products)
}

func (h *ProductHandler) ListPaged(c *gin.Context) {
	req := parsePageRequest(c, model.ProductDefaultSort, "asc")
	result, err := h.products.ListPaged(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	writePaginationHeaders(c, result)
	respondOK(c, result)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.products.Create(c.Request.Context(), &product)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if product.ProductID != 0 && product.ProductID != id {
		respondBadRequest(c, "product id in path does not match request body")
		return
	}
	product.ProductID = id

	updated, err := h.products.Update(c.Request.Context(), &product)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id})
}

func (h *ProductHandler) ProductInventory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.inventory.ListByProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *ProductHandler) ListInventory(c *gin.Context) {
	rows, err := h.inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *ProductHandler) ListInventoryPaged(c *gin.Context) {
	req := parsePageRequest(c, "productid", "asc")
	result, err := h.inventory.ListPaged(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	writePaginationHeaders(c, result)
	respondOK(c, result)
}

type updateQuantityRequest struct {
	Quantity int16 `json:"quantity"`
}

func (h *ProductHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	locationID, ok := pathID(c, "locationId")
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.inventory.UpdateQuantity(c.Request.Context(), productID, int16(locationID), req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"productId": productID, "locationId": locationID, "quantity": req.Quantity})
}
