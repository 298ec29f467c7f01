package employee

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/media"
	"go-employees/internal/shared/apperror"
	"go-employees/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Search(ctx context.Context, designation, department string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (DeleteEmployeeResponse, error)
}

type service struct {
	repo     Repository
	uploader media.Uploader
	logger   *zap.Logger
}

// NewService builds the employee service. uploader may be nil when no
// media host is configured; photo inputs are then stored verbatim.
func NewService(repo Repository, uploader media.Uploader, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, uploader: uploader, logger: l}
}

// log prefers the request-scoped logger attached by the middleware, so
// service lines carry the request and account ids.
func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if errs := ValidateEmployeeInput(req); len(errs) > 0 {
		return EmployeeResponse{}, apperror.New(
			apperror.CodeInvalidInput,
			strings.Join(errs, ", "),
			http.StatusBadRequest,
		)
	}

	email := strings.ToLower(req.Email)

	// Pre-check; the unique index remains the backstop for races.
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log(ctx).Error("create employee uniqueness check failed", zap.Error(err))
		return EmployeeResponse{}, internalError(err)
	}

	joined, err := parseDate(req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}

	// A failed upload never blocks creation: the raw input is stored
	// verbatim as the fallback.
	photo := req.EmployeePhoto
	if photo != nil && *photo != "" && s.uploader != nil {
		if url, upErr := s.uploader.Upload(ctx, *photo); upErr != nil {
			s.log(ctx).Warn("photo upload failed, storing original value", zap.Error(upErr))
		} else {
			photo = &url
		}
	}

	emp := &Employee{
		ID:            uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         email,
		Gender:        req.Gender,
		Designation:   req.Designation,
		Salary:        *req.Salary,
		DateOfJoining: joined,
		Department:    req.Department,
		EmployeePhoto: photo,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.log(ctx).Error("create employee persist failed", zap.String("email", email), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.log(ctx).Info("employee created", zap.String("employee_id", emp.ID.String()))

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("get all employees failed", zap.Error(err))
		return nil, internalError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
		}
		s.log(ctx).Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, internalError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Search(ctx context.Context, designation, department string) ([]EmployeeResponse, error) {
	if designation == "" && department == "" {
		return nil, employeeerrors.ErrSearchTermRequired
	}

	emps, err := s.repo.SearchByDesignationOrDepartment(ctx, designation, department)
	if err != nil {
		s.log(ctx).Error("search employees failed",
			zap.String("designation", designation),
			zap.String("department", department),
			zap.Error(err),
		)
		return nil, internalError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
		}
		s.log(ctx).Error("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, internalError(err)
	}

	// Only supplied fields make it into the update; a nil or empty-string
	// field means "not provided" and is dropped, never written.
	fields := map[string]any{}

	if set(req.FirstName) {
		fields["first_name"] = *req.FirstName
	}
	if set(req.LastName) {
		fields["last_name"] = *req.LastName
	}
	if set(req.Designation) {
		fields["designation"] = *req.Designation
	}
	if set(req.Department) {
		fields["department"] = *req.Department
	}

	if set(req.Email) {
		email := strings.ToLower(*req.Email)
		_, err := s.repo.FindByEmailExcluding(ctx, email, id)
		if err == nil {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeEmailExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log(ctx).Error("update employee uniqueness check failed", zap.Error(err))
			return EmployeeResponse{}, internalError(err)
		}
		fields["email"] = email
	}

	if set(req.Gender) {
		if !ValidGender(*req.Gender) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidGender
		}
		fields["gender"] = *req.Gender
	}

	if req.Salary != nil {
		if *req.Salary < MinSalary {
			return EmployeeResponse{}, employeeerrors.ErrSalaryTooLow
		}
		fields["salary"] = *req.Salary
	}

	// A failed upload on update silently keeps the stored value; the new
	// photo is simply not applied.
	if set(req.EmployeePhoto) {
		if s.uploader == nil {
			fields["employee_photo"] = *req.EmployeePhoto
		} else if url, upErr := s.uploader.Upload(ctx, *req.EmployeePhoto); upErr != nil {
			s.log(ctx).Warn("photo upload failed, keeping stored value",
				zap.String("employee_id", id),
				zap.Error(upErr),
			)
		} else {
			fields["employee_photo"] = url
		}
	}

	if set(req.DateOfJoining) {
		joined, err := parseDate(*req.DateOfJoining)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDate
		}
		fields["date_of_joining"] = joined
	}

	emp, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
		}
		s.log(ctx).Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.log(ctx).Info("employee updated", zap.String("employee_id", id))

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) (DeleteEmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DeleteEmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DeleteEmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
		}
		s.log(ctx).Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return DeleteEmployeeResponse{}, internalError(err)
	}

	s.log(ctx).Info("employee deleted", zap.String("employee_id", id))

	return DeleteEmployeeResponse{
		Message: "Employee deleted successfully",
		ID:      id,
	}, nil
}

// set reports whether an optional string field was actually provided.
func set(s *string) bool {
	return s != nil && *s != ""
}

// parseDate accepts the YYYY-MM-DD calendar form and, for callers sending
// full timestamps, RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func internalError(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            emp.ID.String(),
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		Email:         emp.Email,
		Gender:        emp.Gender,
		Designation:   emp.Designation,
		Salary:        emp.Salary,
		DateOfJoining: emp.DateOfJoining.Format("2006-01-02"),
		Department:    emp.Department,
		CreatedAt:     emp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     emp.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if emp.EmployeePhoto != nil {
		resp.EmployeePhoto = *emp.EmployeePhoto
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
