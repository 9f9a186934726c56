package model

import "time"

// LongestTenuredEmployee is one row of the employee tenure report.
type LongestTenuredEmployee struct {
	EmployeeID          int       `json:"employeeId" db:"business_entity_id"`
	LoginID             string    `json:"loginId" db:"login_id"`
	JobTitle            string    `json:"jobTitle" db:"job_title"`
	DepartmentName      string    `json:"departmentName" db:"department_name"`
	DepartmentStartDate time.Time `json:"departmentStartDate" db:"department_start_date"`
	YearsInDepartment   int       `json:"yearsInDepartment" db:"years_in_department"`
}

// TopSellingProduct is one row of the best-sellers report.
type TopSellingProduct struct {
	ProductID         int     `json:"productId" db:"product_id"`
	ProductName       string  `json:"productName" db:"product_name"`
	ProductNumber     string  `json:"productNumber" db:"product_number"`
	TotalQuantitySold int     `json:"totalQuantitySold" db:"total_quantity_sold"`
	TotalRevenue      float64 `json:"totalRevenue" db:"total_revenue"`
	NumberOfOrders    int     `json:"numberOfOrders" db:"number_of_orders"`
}

// LowInventoryProduct is one row of the low-inventory report.
type LowInventoryProduct struct {
	ProductID        int    `json:"productId" db:"product_id"`
	ProductName      string `json:"productName" db:"product_name"`
	ProductNumber    string `json:"productNumber" db:"product_number"`
	SafetyStockLevel int    `json:"safetyStockLevel" db:"safety_stock_level"`
	CurrentInventory int    `json:"currentInventory" db:"current_inventory"`
	ReorderPoint     int    `json:"reorderPoint" db:"reorder_point"`
	ProductLocation  string `json:"productLocation" db:"product_location"`
	InventoryStatus  string `json:"inventoryStatus" db:"inventory_status"`
}
