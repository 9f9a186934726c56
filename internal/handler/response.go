package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adventureworks/enterprise-api/pkg/apperror"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

// Response is the envelope for all API responses
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data})
}

// respondError maps the application error taxonomy onto HTTP status codes.
// Validation errors carry every collected violation in the errors array.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch apperror.CodeOf(err) {
	case apperror.CodeValidation:
		status = http.StatusBadRequest
		message = err.Error()
	case apperror.CodeConflict:
		status = http.StatusConflict
		message = err.Error()
	case apperror.CodeNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case apperror.CodeConcurrency:
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, Response{
		Status:  "error",
		Message: message,
		Errors:  apperror.ViolationsOf(err),
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Status: "error", Message: message})
}

// parsePageRequest reads the pagination query parameters, filling the
// per-entity default sort field and direction when the client omits them.
// Malformed numbers fall back to the defaults rather than erroring; the
// engine clamps out-of-range values downstream.
func parsePageRequest(c *gin.Context, defaultSort, defaultDirection string) paginate.Request {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = paginate.DefaultPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(paginate.DefaultPageSize)))
	if err != nil {
		pageSize = paginate.DefaultPageSize
	}

	return paginate.Request{
		Page:          page,
		PageSize:      pageSize,
		Search:        c.Query("search"),
		SortBy:        c.DefaultQuery("sortBy", defaultSort),
		SortDirection: c.DefaultQuery("sortDirection", defaultDirection),
	}
}

// writePaginationHeaders mirrors the page metadata into response headers so
// clients can render pagers without parsing the body.
func writePaginationHeaders[T any](c *gin.Context, result paginate.Result[T]) {
	c.Header("X-Pagination-TotalCount", strconv.Itoa(result.TotalCount))
	c.Header("X-Pagination-TotalPages", strconv.Itoa(result.TotalPages))
	c.Header("X-Pagination-CurrentPage", strconv.Itoa(result.CurrentPage))
	c.Header("X-Pagination-PageSize", strconv.Itoa(result.PageSize))
	c.Header("X-Pagination-HasNext", strconv.FormatBool(result.HasNextPage))
	c.Header("X-Pagination-HasPrevious", strconv.FormatBool(result.HasPreviousPage))
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
