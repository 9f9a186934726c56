package service

import (
	"context"
	"io"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

func testLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "disabled", Output: io.Discard})
}

// fakeEmployeeRepo implements repository.EmployeeRepository with overridable
// function fields so each test stubs only what it exercises.
type fakeEmployeeRepo struct {
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

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	return f.ListFn(ctx)
}
func (f *fakeEmployeeRepo) ListPaged(ctx context.Context, req paginate.Request) ([]model.Employee, int, error) {
	return f.ListPagedFn(ctx, req)
}
func (f *fakeEmployeeRepo) Count(ctx context.Context) (int, error) {
	return f.CountFn(ctx)
}
func (f *fakeEmployeeRepo) Get(ctx context.Context, id int) (*model.Employee, error) {
	return f.GetFn(ctx, id)
}
func (f *fakeEmployeeRepo) ExistsActive(ctx context.Context, id int) (bool, error) {
	return f.ExistsActiveFn(ctx, id)
}
func (f *fakeEmployeeRepo) HasDuplicate(ctx context.Context, nationalID, loginID string) (bool, error) {
	return f.HasDuplicateFn(ctx, nationalID, loginID)
}
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return f.CreateFn(ctx, e)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *model.Employee) (int64, error) {
	return f.UpdateFn(ctx, e)
}
func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id int) (int64, error) {
	return f.SoftDeleteFn(ctx, id)
}

type fakeProductRepo struct {
	ListFn                  func(ctx context.Context) ([]model.Product, error)
	ListPagedFn             func(ctx context.Context, req paginate.Request) ([]model.Product, int, error)
	GetFn                   func(ctx context.Context, id int) (*model.Product, error)
	ExistsFn                func(ctx context.Context, id int) (bool, error)
	CreateFn                func(ctx context.Context, p *model.Product) error
	UpdateFn                func(ctx context.Context, p *model.Product) (int64, error)
	HasAssemblyDependencyFn func(ctx context.Context, id int) (bool, error)
	DeleteFn                func(ctx context.Context, id int) (int64, error)
}

func (f *fakeProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return f.ListFn(ctx)
}
func (f *fakeProductRepo) ListPaged(ctx context.Context, req paginate.Request) ([]model.Product, int, error) {
	return f.ListPagedFn(ctx, req)
}
func (f *fakeProductRepo) Get(ctx context.Context, id int) (*model.Product, error) {
	return f.GetFn(ctx, id)
}
func (f *fakeProductRepo) Exists(ctx context.Context, id int) (bool, error) {
	return f.ExistsFn(ctx, id)
}
func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	return f.CreateFn(ctx, p)
}
func (f *fakeProductRepo) Update(ctx context.Context, p *model.Product) (int64, error) {
	return f.UpdateFn(ctx, p)
}
func (f *fakeProductRepo) HasAssemblyDependency(ctx context.Context, id int) (bool, error) {
	return f.HasAssemblyDependencyFn(ctx, id)
}
func (f *fakeProductRepo) Delete(ctx context.Context, id int) (int64, error) {
	return f.DeleteFn(ctx, id)
}

type fakeOrderRepo struct {
	ListFn           func(ctx context.Context) ([]model.SalesOrder, error)
	ListPagedFn      func(ctx context.Context, req paginate.Request) ([]model.SalesOrder, int, error)
	CountFn          func(ctx context.Context) (int, error)
	GetFn            func(ctx context.Context, id int) (*model.SalesOrder, error)
	ExistsFn         func(ctx context.Context, id int) (bool, error)
	ListByCustomerFn func(ctx context.Context, customerID int) ([]model.SalesOrder, error)
	ListByStatusFn   func(ctx context.Context, status int16) ([]model.SalesOrder, error)
	CreateFn         func(ctx context.Context, o *model.SalesOrder) error
	UpdateFn         func(ctx context.Context, o *model.SalesOrder) (int64, error)
	DeleteFn         func(ctx context.Context, id int) (int64, error)
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]model.SalesOrder, error) {
	return f.ListFn(ctx)
}
func (f *fakeOrderRepo) ListPaged(ctx context.Context, req paginate.Request) ([]model.SalesOrder, int, error) {
	return f.ListPagedFn(ctx, req)
}
func (f *fakeOrderRepo) Count(ctx context.Context) (int, error) {
	return f.CountFn(ctx)
}
func (f *fakeOrderRepo) Get(ctx context.Context, id int) (*model.SalesOrder, error) {
	return f.GetFn(ctx, id)
}
func (f *fakeOrderRepo) Exists(ctx context.Context, id int) (bool, error) {
	return f.ExistsFn(ctx, id)
}
func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID int) ([]model.SalesOrder, error) {
	return f.ListByCustomerFn(ctx, customerID)
}
func (f *fakeOrderRepo) ListByStatus(ctx context.Context, status int16) ([]model.SalesOrder, error) {
	return f.ListByStatusFn(ctx, status)
}
func (f *fakeOrderRepo) Create(ctx context.Context, o *model.SalesOrder) error {
	return f.CreateFn(ctx, o)
}
func (f *fakeOrderRepo) Update(ctx context.Context, o *model.SalesOrder) (int64, error) {
	return f.UpdateFn(ctx, o)
}
func (f *fakeOrderRepo) Delete(ctx context.Context, id int) (int64, error) {
	return f.DeleteFn(ctx, id)
}

type fakeInventoryRepo struct {
	ListFn           func(ctx context.Context) ([]model.ProductInventory, error)
	ListByProductFn  func(ctx context.Context, productID int) ([]model.ProductInventory, error)
	UpdateQuantityFn func(ctx context.Context, productID int, locationID, quantity int16) (int64, error)
}

func (f *fakeInventoryRepo) List(ctx context.Context) ([]model.ProductInventory, error) {
	return f.ListFn(ctx)
}
func (f *fakeInventoryRepo) ListByProduct(ctx context.Context, productID int) ([]model.ProductInventory, error) {
	return f.ListByProductFn(ctx, productID)
}
func (f *fakeInventoryRepo) UpdateQuantity(ctx context.Context, productID int, locationID, quantity int16) (int64, error) {
	return f.UpdateQuantityFn(ctx, productID, locationID, quantity)
}

type fakeReportRepo struct {
	LongestTenuredEmployeesFn func(ctx context.Context) ([]model.LongestTenuredEmployee, error)
	TopSellingProductsFn      func(ctx context.Context, limit int) ([]model.TopSellingProduct, error)
	LowInventoryProductsFn    func(ctx context.Context) ([]model.LowInventoryProduct, error)
}

func (f *fakeReportRepo) LongestTenuredEmployees(ctx context.Context) ([]model.LongestTenuredEmployee, error) {
	return f.LongestTenuredEmployeesFn(ctx)
}
func (f *fakeReportRepo) TopSellingProducts(ctx context.Context, limit int) ([]model.TopSellingProduct, error) {
	return f.TopSellingProductsFn(ctx, limit)
}
func (f *fakeReportRepo) LowInventoryProducts(ctx context.Context) ([]model.LowInventoryProduct, error) {
	return f.LowInventoryProductsFn(ctx)
}
