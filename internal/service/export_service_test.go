package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockEmployeeRepo) {
	repo, empRepo := newMockRepository()
	svc := NewExportService(repo, zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }
	return svc, empRepo
}

func TestExportService_ExportEmployees_Empty(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportEmployees(context.Background())
	if !errors.Is(err, ErrExportNoEmployees) {
		t.Errorf("期望 ErrExportNoEmployees，实际: %v", err)
	}
}

func TestExportService_ExportEmployees_RepoError(t *testing.T) {
	svc, empRepo := setupTestExportService()
	empRepo.failWith = errMockDB

	_, _, err := svc.ExportEmployees(context.Background())
	if !errors.Is(err, errMockDB) {
		t.Errorf("期望透传驱动错误，实际: %v", err)
	}
}

func TestExportService_ExportEmployees_Success(t *testing.T) {
	svc, empRepo := setupTestExportService()
	employees := DemoEmployees()
	employees[2].Age = nil
	_, _ = empRepo.CreateBatch(context.Background(), employees)

	buf, filename, err := svc.ExportEmployees(context.Background())
	if err != nil {
		t.Fatalf("ExportEmployees 应成功: %v", err)
	}
	if filename != "employees_20261015.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件应可被解析: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"A1": "id",
		"B1": "name",
		"D1": "department",
		"A2": "1",
		"B2": "John Doe",
		"C2": "30",
		"D2": "HR",
		"B4": "Emily Davis",
		"C4": "",
		"D4": "IT",
	}
	for axis, want := range checks {
		got, err := f.GetCellValue("employees", axis)
		if err != nil {
			t.Fatalf("读取 %s 失败: %v", axis, err)
		}
		if got != want {
			t.Errorf("%s 期望 %q，实际 %q", axis, want, got)
		}
	}

	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		t.Error("默认 Sheet1 应被删除")
	}
}
