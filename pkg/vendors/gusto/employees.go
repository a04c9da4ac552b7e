package gusto

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

var (
	getCurrentUser = api.Get("gusto.current_user.get", "v1/me")
	getCompany     = api.Get("gusto.companies.get", "v1/companies/{company_id}")
	getEmployee    = api.Get("gusto.employees.get", "v1/employees/{employee_id}")
	listEmployees  = api.Get("gusto.employees.list", "v1/companies/{company_id}/employees")
	createEmployee = api.Post("gusto.employees.create", "v1/companies/{company_id}/employees")
	updateEmployee = api.Put("gusto.employees.update", "v1/employees/{employee_id}")
)

type CurrentUser struct {
	client *client.Client
}

// Get returns the user the access token belongs to.
func (u *CurrentUser) Get(ctx context.Context) (*User, error) {
	return client.Fetch[User](ctx, u.client, client.Call{Endpoint: getCurrentUser})
}

type Companies struct {
	client *client.Client
}

// Get returns a company by ID or UUID.
func (c *Companies) Get(ctx context.Context, companyID string) (*Company, error) {
	return client.Fetch[Company](ctx, c.client, client.Call{
		Endpoint: getCompany,
		Params:   api.PathParams{"company_id": companyID},
	})
}

type Employees struct {
	client *client.Client
}

// Get returns an employee by ID or UUID. include names extra attributes to
// embed, such as "custom_fields".
func (e *Employees) Get(ctx context.Context, employeeID string, include ...string) (*Employee, error) {
	return client.Fetch[Employee](ctx, e.client, client.Call{
		Endpoint: getEmployee,
		Params:   api.PathParams{"employee_id": employeeID},
		Query:    includeQuery(api.NewQuery(), include),
	})
}

// List returns a company's employees, including onboarding and terminated
// ones unless filtered.
func (e *Employees) List(ctx context.Context, companyID string, opts ListEmployeesOptions) ([]Employee, error) {
	query := includeQuery(api.NewQuery(), opts.Include).
		OptInt("page", opts.Page).
		OptInt("per", opts.Per).
		OptBool("terminated", opts.Terminated)

	result, err := client.Fetch[[]Employee](ctx, e.client, client.Call{
		Endpoint: listEmployees,
		Params:   api.PathParams{"company_id": companyID},
		Query:    query,
	})
	if err != nil {
		return nil, err
	}

	return *result, nil
}

func (e *Employees) Create(ctx context.Context, companyID string, request *CreateEmployeeRequest) (*Employee, error) {
	return client.Fetch[Employee](ctx, e.client, client.Call{
		Endpoint: createEmployee,
		Params:   api.PathParams{"company_id": companyID},
		Body:     request,
	})
}

func (e *Employees) Update(ctx context.Context, employeeID string, request *UpdateEmployeeRequest) (*Employee, error) {
	return client.Fetch[Employee](ctx, e.client, client.Call{
		Endpoint: updateEmployee,
		Params:   api.PathParams{"employee_id": employeeID},
		Body:     request,
	})
}

// includeQuery joins include values with commas, the form Gusto expects.
func includeQuery(query *api.Query, include []string) *api.Query {
	if len(include) == 0 {
		return query
	}

	return query.Set("include", strings.Join(include, ","))
}
