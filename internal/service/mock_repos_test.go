package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"course-basics/internal/model"
	"course-basics/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[uint]*model.Employee
	nextID    uint
	// failWith 非空时所有方法返回该错误
	failWith error
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[uint]*model.Employee), nextID: 1}
}

func (m *mockEmployeeRepo) CreateBatch(_ context.Context, employees []model.Employee) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	for i := range employees {
		employees[i].ID = m.nextID
		m.nextID++
		e := employees[i]
		m.employees[e.ID] = &e
	}
	return int64(len(employees)), nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id uint) (*model.Employee, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByName(_ context.Context, name string) (*model.Employee, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, e := range m.sorted() {
		if e.Name == name {
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.sorted(), nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	return int64(len(m.employees)), nil
}

func (m *mockEmployeeRepo) UpdateDepartmentByName(_ context.Context, name, department string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var n int64
	for _, e := range m.employees {
		if e.Name == name {
			d := department
			e.Department = &d
			n++
		}
	}
	return n, nil
}

func (m *mockEmployeeRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var n int64
	for id, e := range m.employees {
		if e.Name == name {
			delete(m.employees, id)
			n++
		}
	}
	return n, nil
}

func (m *mockEmployeeRepo) DeleteAll(_ context.Context) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	n := int64(len(m.employees))
	m.employees = make(map[uint]*model.Employee)
	return n, nil
}

func (m *mockEmployeeRepo) sorted() []model.Employee {
	result := make([]model.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

var errMockDB = errors.New("mock: connection refused")

func newMockRepository() (*repository.Repository, *mockEmployeeRepo) {
	empRepo := newMockEmployeeRepo()
	return &repository.Repository{Employee: empRepo}, empRepo
}
