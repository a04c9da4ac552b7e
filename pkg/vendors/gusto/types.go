package gusto

// User is the authenticated user and the resources it can act on.
type User struct {
	ID    *int64  `json:"id,omitempty"`
	Email *string `json:"email,omitempty"`
	Roles *Roles  `json:"roles,omitempty"`
}

type Roles struct {
	Payroll  *PayrollAdmin `json:"payroll_admin,omitempty"`
	Employee *RoleEmployee `json:"employee,omitempty"`
}

type PayrollAdmin struct {
	Companies []Company `json:"companies,omitempty"`
}

type RoleEmployee struct {
	ID        *int64 `json:"id,omitempty"`
	CompanyID *int64 `json:"company_id,omitempty"`
}

type Company struct {
	ID            *int64  `json:"id,omitempty"`
	UUID          *string `json:"uuid,omitempty"`
	Name          *string `json:"name,omitempty"`
	TradeName     *string `json:"trade_name,omitempty"`
	EIN           *string `json:"ein,omitempty"`
	EntityType    *string `json:"entity_type,omitempty"`
	CompanyStatus *string `json:"company_status,omitempty"`
}

// Employee is a person on a company's payroll.
type Employee struct {
	ID            *int64  `json:"id,omitempty"`
	UUID          *string `json:"uuid,omitempty"`
	Version       *string `json:"version,omitempty"`
	CompanyID     *int64  `json:"company_id,omitempty"`
	ManagerID     *int64  `json:"manager_id,omitempty"`
	FirstName     *string `json:"first_name,omitempty"`
	MiddleInitial *string `json:"middle_initial,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	Terminated    *bool   `json:"terminated,omitempty"`
	Onboarded     *bool   `json:"onboarded,omitempty"`
	Department    *string `json:"department,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
}

// CreateEmployeeRequest is the body for Employees.Create.
type CreateEmployeeRequest struct {
	FirstName     string  `json:"first_name"`
	MiddleInitial *string `json:"middle_initial,omitempty"`
	LastName      string  `json:"last_name"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	Email         *string `json:"email,omitempty"`
	SSN           *string `json:"ssn,omitempty"`
}

// UpdateEmployeeRequest is the body for Employees.Update. Version must echo
// the employee's current version.
type UpdateEmployeeRequest struct {
	Version               string  `json:"version"`
	FirstName             *string `json:"first_name,omitempty"`
	MiddleInitial         *string `json:"middle_initial,omitempty"`
	LastName              *string `json:"last_name,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	Email                 *string `json:"email,omitempty"`
	SSN                   *string `json:"ssn,omitempty"`
	TwoPercentShareholder *bool   `json:"two_percent_shareholder,omitempty"`
}

// ListEmployeesOptions filters Employees.List. Nil fields are omitted.
type ListEmployeesOptions struct {
	Include    []string
	Page       *int
	Per        *int
	Terminated *bool
}
