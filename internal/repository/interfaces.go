package repository

import (
	"context"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

// EmployeeRepository persists employees across the three related tables of
// the person/humanresources schema split.
type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
	ListPaged(ctx context.Context, req paginate.Request) ([]model.Employee, int, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int) (*model.Employee, error)
	ExistsActive(ctx context.Context, id int) (bool, error)
	HasDuplicate(ctx context.Context, nationalID, loginID string) (bool, error)
	Create(ctx context.Context, e *model.Employee) error
	Update(ctx context.Context, e *model.Employee) (int64, error)
	SoftDelete(ctx context.Context, id int) (int64, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	ListPaged(ctx context.Context, req paginate.Request) ([]model.Product, int, error)
	Get(ctx context.Context, id int) (*model.Product, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) (int64, error)
	HasAssemblyDependency(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type OrderRepository interface {
	List(ctx context.Context) ([]model.SalesOrder, error)
	ListPaged(ctx context.Context, req paginate.Request) ([]model.SalesOrder, int, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int) (*model.SalesOrder, error)
	Exists(ctx context.Context, id int) (bool, error)
	ListByCustomer(ctx context.Context, customerID int) ([]model.SalesOrder, error)
	ListByStatus(ctx context.Context, status int16) ([]model.SalesOrder, error)
	Create(ctx context.Context, o *model.SalesOrder) error
	Update(ctx context.Context, o *model.SalesOrder) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type InventoryRepository interface {
	List(ctx context.Context) ([]model.ProductInventory, error)
	ListByProduct(ctx context.Context, productID int) ([]model.ProductInventory, error)
	UpdateQuantity(ctx context.Context, productID int, locationID, quantity int16) (int64, error)
}

// ReportRepository serves the read-only aggregate queries.
type ReportRepository interface {
	LongestTenuredEmployees(ctx context.Context) ([]model.LongestTenuredEmployee, error)
	TopSellingProducts(ctx context.Context, limit int) ([]model.TopSellingProduct, error)
	LowInventoryProducts(ctx context.Context) ([]model.LowInventoryProduct, error)
}
