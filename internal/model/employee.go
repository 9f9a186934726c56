package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee maps humanresources.employee. The primary key is the shared
// business entity id issued by person.business_entity.
type Employee struct {
	EmployeeID       int       `json:"employeeId" db:"business_entity_id"`
	NationalIDNumber string    `json:"nationalIdNumber" db:"national_id_number"`
	LoginID          string    `json:"loginId" db:"login_id"`
	JobTitle         string    `json:"jobTitle" db:"job_title"`
	BirthDate        time.Time `json:"birthDate" db:"birth_date"`
	MaritalStatus    string    `json:"maritalStatus" db:"marital_status"`
	Gender           string    `json:"gender" db:"gender"`
	HireDate         time.Time `json:"hireDate" db:"hire_date"`
	SalariedFlag     bool      `json:"salariedFlag" db:"salaried_flag"`
	VacationHours    int16     `json:"vacationHours" db:"vacation_hours"`
	SickLeaveHours   int16     `json:"sickLeaveHours" db:"sick_leave_hours"`
	CurrentFlag      bool      `json:"currentFlag" db:"current_flag"`
	RowGUID          uuid.UUID `json:"rowguid" db:"rowguid"`
	ModifiedDate     time.Time `json:"modifiedDate" db:"modified_date"`
}

// EmployeeSortFields maps client sort names to employee columns.
// EmployeeDefaultSort is the fallback for unrecognized names.
var EmployeeSortFields = map[string]string{
	"employeeid":       "business_entity_id",
	"loginid":          "login_id",
	"jobtitle":         "job_title",
	"hiredate":         "hire_date",
	"birthdate":        "birth_date",
	"nationalidnumber": "national_id_number",
}

const EmployeeDefaultSort = "employeeid"
