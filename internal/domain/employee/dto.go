package employee

import (
	"github.com/shopspring/decimal"
)

type WorkExperience struct {
	Valid  bool   `json:"valid"`
	Years  int    `json:"years"`
	Months int    `json:"months"`
	Days   int    `json:"days"`
	Reason string `json:"reason,omitempty"`
}

type EmployeeResponse struct {
	ID              string           `json:"id"`
	EmployeeCode    string           `json:"employee_code"`
	FullName        string           `json:"full_name"`
	Position        string           `json:"position"`
	HireDate        string           `json:"hire_date"`
	ContractEndDate *string          `json:"contract_end_date,omitempty"`
	BaseSalary      *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyWage      *decimal.Decimal `json:"hourly_wage,omitempty"`
	IsActive        bool             `json:"is_active"`
	IsMarried       bool             `json:"is_married"`
	ChildrenCount   int              `json:"children_count"`
	WorkExperience  WorkExperience   `json:"work_experience"`
}
