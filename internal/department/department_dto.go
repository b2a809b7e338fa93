package department

import (
	"time"

	"go-hrpay/internal/shared/listquery"
)

type CreateDepartmentRequest struct {
	Name               string  `json:"name" binding:"required,max=100"`
	Description        *string `json:"description"`
	ManagerID          *string `json:"managerId" binding:"omitempty,uuid"`
	ParentDepartmentID *string `json:"parentDepartmentId" binding:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name               string  `json:"name" binding:"required,max=100"`
	Description        *string `json:"description"`
	ManagerID          *string `json:"managerId" binding:"omitempty,uuid"`
	ParentDepartmentID *string `json:"parentDepartmentId" binding:"omitempty,uuid"`
}

type ListDepartmentsRequest struct {
	listquery.Request
	// When false only top-level departments are listed.
	IncludeSubDepartments bool `form:"includeSubDepartments"`
}

type DepartmentResponse struct {
	DepartmentID         string               `json:"departmentId"`
	Name                 string               `json:"name"`
	Description          *string              `json:"description"`
	ManagerID            *string              `json:"managerId"`
	ManagerName          *string              `json:"managerName"`
	ParentDepartmentID   *string              `json:"parentDepartmentId"`
	ParentDepartmentName *string              `json:"parentDepartmentName"`
	EmployeeCount        int64                `json:"employeeCount"`
	SubDepartments       []DepartmentResponse `json:"subDepartments,omitempty"`
	Created              time.Time            `json:"created"`
	Modified             time.Time            `json:"modified"`
}
