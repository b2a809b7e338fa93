package employee

import (
	"time"

	"go-hrpay/internal/shared/listquery"
)

type CreateEmployeeRequest struct {
	FirstName        string  `json:"firstName" binding:"required,max=100"`
	LastName         string  `json:"lastName" binding:"required,max=100"`
	Email            string  `json:"email" binding:"required,email,max=255"`
	Phone            *string `json:"phone" binding:"omitempty,max=50"`
	Address          *string `json:"address"`
	DateOfBirth      string  `json:"dateOfBirth" binding:"required"`
	HireDate         string  `json:"hireDate" binding:"required"`
	Status           string  `json:"status" binding:"omitempty,oneof=Active OnLeave Terminated"`
	DepartmentID     string  `json:"departmentId" binding:"required,uuid"`
	PositionID       string  `json:"positionId" binding:"required,uuid"`
	ManagerID        *string `json:"managerId" binding:"omitempty,uuid"`
	EmergencyContact *string `json:"emergencyContact"`
	BankDetails      *string `json:"bankDetails"`
}

type UpdateEmployeeRequest struct {
	FirstName        string  `json:"firstName" binding:"required,max=100"`
	LastName         string  `json:"lastName" binding:"required,max=100"`
	Email            string  `json:"email" binding:"required,email,max=255"`
	Phone            *string `json:"phone" binding:"omitempty,max=50"`
	Address          *string `json:"address"`
	DateOfBirth      string  `json:"dateOfBirth" binding:"required"`
	HireDate         string  `json:"hireDate" binding:"required"`
	Status           string  `json:"status" binding:"omitempty,oneof=Active OnLeave Terminated"`
	DepartmentID     string  `json:"departmentId" binding:"required,uuid"`
	PositionID       string  `json:"positionId" binding:"required,uuid"`
	ManagerID        *string `json:"managerId" binding:"omitempty,uuid"`
	EmergencyContact *string `json:"emergencyContact"`
	BankDetails      *string `json:"bankDetails"`
}

type ListEmployeesRequest struct {
	listquery.Request
	Status       string `form:"status" binding:"omitempty,oneof=Active OnLeave Terminated"`
	DepartmentID string `form:"departmentId" binding:"omitempty,uuid"`
	PositionID   string `form:"positionId" binding:"omitempty,uuid"`
}

type SearchEmployeesRequest struct {
	SearchTerm string `form:"searchTerm" binding:"required"`
}

type EmployeeResponse struct {
	EmployeeID       string    `json:"employeeId"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	Address          *string   `json:"address"`
	DateOfBirth      string    `json:"dateOfBirth"`
	HireDate         string    `json:"hireDate"`
	TerminationDate  *string   `json:"terminationDate"`
	Status           string    `json:"status"`
	DepartmentID     string    `json:"departmentId"`
	DepartmentName   string    `json:"departmentName"`
	PositionID       string    `json:"positionId"`
	PositionTitle    string    `json:"positionTitle"`
	ManagerID        *string   `json:"managerId"`
	ManagerName      *string   `json:"managerName"`
	EmergencyContact *string   `json:"emergencyContact"`
	BankDetails      *string   `json:"bankDetails"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
}

// EmployeeOption is the slim shape served to form dropdowns.
type EmployeeOption struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}
