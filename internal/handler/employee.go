package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/service"
)

// EmployeeHandler exposes the employee endpoints.
type EmployeeHandler struct {
	service *service.EmployeeService
}

func NewEmployeeHandler(s *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

func (h *EmployeeHandler) RegisterRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.List)
		employees.GET("/paged", h.ListPaged)
		employees.GET("/count", h.Count)
		employees.GET("/:id", h.Get)
		employees.POST("", h.Create)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, employees)
}

func (h *EmployeeHandler) ListPaged(c *gin.Context) {
	req := parsePageRequest(c, model.EmployeeDefaultSort, "asc")
	result, err := h.service.ListPaged(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	writePaginationHeaders(c, result)
	respondOK(c, result)
}

func (h *EmployeeHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": count})
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	employee, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, employee)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var employee model.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &employee)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, created)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var employee model.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if employee.EmployeeID != 0 && employee.EmployeeID != id {
		respondBadRequest(c, "employee id in path does not match request body")
		return
	}
	employee.EmployeeID = id

	updated, err := h.service.Update(c.Request.Context(), &employee)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, updated)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
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
