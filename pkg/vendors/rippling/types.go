package rippling

import "time"

// Worker is a person's employment record.
type Worker struct {
	ID             string     `json:"id"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	UserID         *string    `json:"user_id,omitempty"`
	ManagerID      *string    `json:"manager_id,omitempty"`
	DepartmentID   *string    `json:"department_id,omitempty"`
	TeamsID        []string   `json:"teams_id,omitempty"`
	Status         *string    `json:"status,omitempty"`
	WorkEmail      *string    `json:"work_email,omitempty"`
	Title          *string    `json:"title,omitempty"`
	StartDate      *string    `json:"start_date,omitempty"`
	EndDate        *string    `json:"end_date,omitempty"`
	EmploymentType *string    `json:"employment_type,omitempty"`
	Country        *string    `json:"country,omitempty"`
}

// ListWorkersOptions filters Workers.List. Nil fields are omitted.
type ListWorkersOptions struct {
	Expand  *string
	Filter  *string
	OrderBy *string
}

type Department struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ParentID  *string    `json:"parent_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateDepartmentRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

type UpdateDepartmentRequest struct {
	Name     *string `json:"name,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`
}

type Team struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ParentID  *string    `json:"parent_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateTeamRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

type UpdateTeamRequest struct {
	Name     *string `json:"name,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`
}
