package employee

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// MinSalary is the lowest salary an employee record may carry.
const MinSalary = 1000

// ValidateEmployeeInput checks every constraint independently and returns
// all violated rules, in field order. An empty slice means valid. Date of
// joining is a presence check only; format is enforced when persisting.
func ValidateEmployeeInput(input CreateEmployeeRequest) []string {
	var errs []string

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, "First name is required")
	}

	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, "Last name is required")
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(input.Email) {
		errs = append(errs, "Please enter a valid email address")
	}

	if input.Gender == "" {
		errs = append(errs, "Gender is required")
	} else if !ValidGender(input.Gender) {
		errs = append(errs, "Gender must be Male, Female, or Other")
	}

	if strings.TrimSpace(input.Designation) == "" {
		errs = append(errs, "Designation is required")
	}

	if input.Salary == nil {
		errs = append(errs, "Salary is required")
	} else if *input.Salary < MinSalary {
		errs = append(errs, "Salary must be at least 1000")
	}

	if input.DateOfJoining == "" {
		errs = append(errs, "Date of joining is required")
	}

	if strings.TrimSpace(input.Department) == "" {
		errs = append(errs, "Department is required")
	}

	return errs
}
