package employeeerrors

import (
	"fmt"
	"net/http"

	"go-employees/internal/shared/apperror"
)

var (
	ErrEmployeeEmailExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"Gender must be Male, Female, or Other",
		http.StatusBadRequest,
	)
	ErrSalaryTooLow = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be at least 1000",
		http.StatusBadRequest,
	)
	ErrSearchTermRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please provide at least a designation or department to search",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_of_joining format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

// EmployeeNotFound carries the addressed id in the message.
func EmployeeNotFound(id string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Employee with ID %s not found", id),
		http.StatusNotFound,
	)
}
