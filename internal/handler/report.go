package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adventureworks/enterprise-api/internal/service"
)

// ReportHandler exposes the read-only aggregate reports.
type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(s *service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// RegisterRoutes mounts the /reports group and entity-scoped aliases.
// The optional middleware (cache headers) applies to every report route.
func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup, mw ...gin.HandlerFunc) {
	reports := r.Group("/reports", mw...)
	{
		reports.GET("/employee-tenure", h.EmployeeTenure)
		reports.GET("/top-sellers", h.TopSellers)
		reports.GET("/low-inventory", h.LowInventory)
		reports.GET("/low-inventory/paged", h.LowInventoryPaged)
	}

	aliases := r.Group("", mw...)
	{
		aliases.GET("/employees/longest-tenured", h.EmployeeTenure)
		aliases.GET("/products/top-sellers", h.TopSellers)
		aliases.GET("/orders/low-inventory", h.LowInventory)
	}
}

func (h *ReportHandler) EmployeeTenure(c *gin.Context) {
	rows, err := h.service.LongestTenuredEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *ReportHandler) TopSellers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}
	rows, err := h.service.TopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *ReportHandler) LowInventory(c *gin.Context) {
	rows, err := h.service.LowInventoryProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *ReportHandler) LowInventoryPaged(c *gin.Context) {
	req := parsePageRequest(c, "inventory", "asc")
	result, err := h.service.LowInventoryPaged(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	writePaginationHeaders(c, result)
	respondOK(c, result)
}
