package employee

type CreateEmployeeRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Gender        string   `json:"gender"`
	Designation   string   `json:"designation"`
	Salary        *float64 `json:"salary"`
	DateOfJoining string   `json:"date_of_joining"`
	Department    string   `json:"department"`
	EmployeePhoto *string  `json:"employee_photo"`
}

// UpdateEmployeeRequest carries only the fields to change. A nil or
// empty-string field means "leave unchanged", never "set to null".
type UpdateEmployeeRequest struct {
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Email         *string  `json:"email"`
	Gender        *string  `json:"gender"`
	Designation   *string  `json:"designation"`
	Salary        *float64 `json:"salary"`
	DateOfJoining *string  `json:"date_of_joining"`
	Department    *string  `json:"department"`
	EmployeePhoto *string  `json:"employee_photo"`
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	EmployeePhoto string  `json:"employee_photo,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type DeleteEmployeeResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
