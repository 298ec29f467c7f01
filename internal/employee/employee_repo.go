package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	// FindByEmailExcluding skips the given id, for self-excluding
	// uniqueness checks during update.
	FindByEmailExcluding(ctx context.Context, email, excludeID string) (*Employee, error)
	// SearchByDesignationOrDepartment matches case-insensitive substrings;
	// when both terms are given the match is a logical OR.
	SearchByDesignationOrDepartment(ctx context.Context, designation, department string) ([]Employee, error)
	// UpdateFields applies only the supplied columns and returns the
	// post-update record.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*Employee, error)
	DeleteByID(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindByEmailExcluding(ctx context.Context, email, excludeID string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("id <> ?", excludeID).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) SearchByDesignationOrDepartment(ctx context.Context, designation, department string) ([]Employee, error) {
	tx := r.db.WithContext(ctx)
	switch {
	case designation != "" && department != "":
		tx = tx.Where("designation ILIKE ? OR department ILIKE ?", contains(designation), contains(department))
	case designation != "":
		tx = tx.Where("designation ILIKE ?", contains(designation))
	default:
		tx = tx.Where("department ILIKE ?", contains(department))
	}

	var emps []Employee
	err := tx.Find(&emps).Error
	return emps, err
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*Employee, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&Employee{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	var emp Employee
	if err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func contains(term string) string {
	return "%" + term + "%"
}
