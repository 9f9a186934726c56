package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/service"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

type stubEmployeeRepo struct {
	ListFn         func(ctx context.Context) ([]model.Employee, error)
	ListPagedFn    func(ctx context.Context, req paginate.Request) ([]model.Employee, int, error)
	CountFn        func(ctx context.Context) (int, error)
	GetFn          func(ctx context.Context, id int) (*model.Employee, error)
	ExistsActiveFn func(ctx context.Context, id int) (bool, error)
	HasDuplicateFn func(ctx context.Context, nationalID, loginID string) (bool, error)
	CreateFn       func(ctx context.Context, e *model.Employee) error
	UpdateFn       func(ctx context.Context, e *model.Employee) (int64, error)
	SoftDeleteFn   func(ctx context.Context, id int) (int64, error)
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	return s.ListFn(ctx)
}
func (s *stubEmployeeRepo) ListPaged(ctx context.Context, req paginate.Request) ([]model.Employee, int, error) {
	return s.ListPagedFn(ctx, req)
}
func (s *stubEmployeeRepo) Count(ctx context.Context) (int, error) { return s.CountFn(ctx) }
func (s *stubEmployeeRepo) Get(ctx context.Context, id int) (*model.Employee, error) {
	return s.GetFn(ctx, id)
}
func (s *stubEmployeeRepo) ExistsActive(ctx context.Context, id int) (bool, error) {
	return s.ExistsActiveFn(ctx, id)
}
func (s *stubEmployeeRepo) HasDuplicate(ctx context.Context, nationalID, loginID string) (bool, error) {
	return s.HasDuplicateFn(ctx, nationalID, loginID)
}
func (s *stubEmployeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return s.CreateFn(ctx, e)
}
func (s *stubEmployeeRepo) Update(ctx context.Context, e *model.Employee) (int64, error) {
	return s.UpdateFn(ctx, e)
}
func (s *stubEmployeeRepo) SoftDelete(ctx context.Context, id int) (int64, error) {
	return s.SoftDeleteFn(ctx, id)
}

func newEmployeeRouter(repo *stubEmployeeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New(&logger.Config{Level: "disabled", Output: io.Discard})
	h := NewEmployeeHandler(service.NewEmployeeService(repo, log))

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListPagedEmitsPaginationHeaders(t *testing.T) {
	repo := &stubEmployeeRepo{
		ListPagedFn: func(ctx context.Context, req paginate.Request) ([]model.Employee, int, error) {
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 5, req.PageSize)
			return make([]model.Employee, 5), 20, nil
		},
	}
	r := newEmployeeRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/paged?page=2&pageSize=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "20", w.Header().Get("X-Pagination-TotalCount"))
	assert.Equal(t, "4", w.Header().Get("X-Pagination-TotalPages"))
	assert.Equal(t, "2", w.Header().Get("X-Pagination-CurrentPage"))
	assert.Equal(t, "5", w.Header().Get("X-Pagination-PageSize"))
	assert.Equal(t, "true", w.Header().Get("X-Pagination-HasNext"))
	assert.Equal(t, "true", w.Header().Get("X-Pagination-HasPrevious"))
}

func TestListPagedDefaultsPageSize(t *testing.T) {
	repo := &stubEmployeeRepo{
		ListPagedFn: func(ctx context.Context, req paginate.Request) ([]model.Employee, int, error) {
			assert.Equal(t, 1, req.Page)
			assert.Equal(t, paginate.DefaultPageSize, req.PageSize)
			assert.Equal(t, model.EmployeeDefaultSort, req.SortBy)
			return nil, 0, nil
		},
	}
	r := newEmployeeRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/paged", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPagedStorageFaultIsServerError(t *testing.T) {
	repo := &stubEmployeeRepo{
		ListPagedFn: func(ctx context.Context, req paginate.Request) ([]model.Employee, int, error) {
			return nil, 0, errors.New("storage fault")
		},
	}
	r := newEmployeeRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/paged", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotContains(t, resp.Message, "storage fault", "internals must not leak to callers")
}

func TestCreateInvalidEmployeeReturnsAllViolations(t *testing.T) {
	r := newEmployeeRouter(&stubEmployeeRepo{})

	body := map[string]any{
		"nationalIdNumber": "123",
		"loginId":          "adventure-works\\new0",
		"jobTitle":         "Tester",
		"birthDate":        time.Now().AddDate(-16, 0, 0).Format(time.RFC3339),
		"maritalStatus":    "X",
		"gender":           "Z",
		"hireDate":         time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	}
	w := doRequest(t, r, http.MethodPost, "/api/v1/employees", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 4)
}

func TestCreateDuplicateReturnsConflict(t *testing.T) {
	repo := &stubEmployeeRepo{
		HasDuplicateFn: func(ctx context.Context, _, _ string) (bool, error) { return true, nil },
	}
	r := newEmployeeRouter(repo)

	body := map[string]any{
		"nationalIdNumber": "123456789",
		"loginId":          "adventure-works\\dup0",
		"jobTitle":         "Tester",
		"birthDate":        "1990-01-01T00:00:00Z",
		"maritalStatus":    "S",
		"gender":           "F",
		"hireDate":         "2020-01-01T00:00:00Z",
	}
	w := doRequest(t, r, http.MethodPost, "/api/v1/employees", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateIDMismatchIsBadRequest(t *testing.T) {
	r := newEmployeeRouter(&stubEmployeeRepo{})

	body := map[string]any{
		"employeeId":       7,
		"nationalIdNumber": "123456789",
		"loginId":          "adventure-works\\x0",
		"jobTitle":         "Tester",
		"birthDate":        "1990-01-01T00:00:00Z",
		"maritalStatus":    "S",
		"gender":           "F",
		"hireDate":         "2020-01-01T00:00:00Z",
	}
	w := doRequest(t, r, http.MethodPut, "/api/v1/employees/8", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "does not match")
}

func TestGetMissingEmployeeIsNotFound(t *testing.T) {
	repo := &stubEmployeeRepo{
		GetFn: func(ctx context.Context, id int) (*model.Employee, error) {
			return nil, sql.ErrNoRows
		},
	}
	r := newEmployeeRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInvalidIDIsBadRequest(t *testing.T) {
	r := newEmployeeRouter(&stubEmployeeRepo{})

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountEndpointCoexistsWithIDRoute(t *testing.T) {
	repo := &stubEmployeeRepo{
		CountFn: func(ctx context.Context) (int, error) { return 290, nil },
	}
	r := newEmployeeRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/count", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "290")
}
