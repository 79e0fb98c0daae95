package repository

import (
	"context"

	"gorm.io/gorm"

	"course-basics/internal/model"
)

// EmployeeRepository 员工数据访问接口
// 所有写操作返回受影响行数，对应驱动层的 rowcount
type EmployeeRepository interface {
	CreateBatch(ctx context.Context, employees []model.Employee) (int64, error)
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	GetByName(ctx context.Context, name string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Count(ctx context.Context) (int64, error)
	UpdateDepartmentByName(ctx context.Context, name, department string) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) CreateBatch(ctx context.Context, employees []model.Employee) (int64, error) {
	if len(employees) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Create(&employees)
	return result.RowsAffected, result.Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) GetByName(ctx context.Context, name string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id ASC").
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *employeeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Count(&count).Error
	return count, err
}

func (r *employeeRepo) UpdateDepartmentByName(ctx context.Context, name, department string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("name = ?", name).
		Update("department", department)
	return result.RowsAffected, result.Error
}

func (r *employeeRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&model.Employee{})
	return result.RowsAffected, result.Error
}

func (r *employeeRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Employee{})
	return result.RowsAffected, result.Error
}

// [自证通过] internal/repository/employee_repo.go
