package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"course-basics/config"
	"course-basics/internal/repository"
	"course-basics/pkg/database"
)

func TestCRUDDemo_Run_Output(t *testing.T) {
	svc, _ := setupTestEmployeeService()
	schemaCalls := 0
	demo := NewCRUDDemo(svc, func(context.Context) error {
		schemaCalls++
		return nil
	})

	var out bytes.Buffer
	if err := demo.Run(context.Background(), &out); err != nil {
		t.Fatalf("Run 应成功: %v", err)
	}

	want := strings.Join([]string{
		"3 records inserted.",
		"(1, John Doe, 30, HR)",
		"(2, Jane Smith, 25, Finance)",
		"(3, Emily Davis, 35, IT)",
		"1 record(s) updated.",
		"1 record(s) deleted.",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("输出不符:\n期望:\n%s\n实际:\n%s", want, out.String())
	}
	if schemaCalls != 1 {
		t.Errorf("建表步骤应执行 1 次，实际=%d", schemaCalls)
	}
}

func TestCRUDDemo_Run_FinalState(t *testing.T) {
	svc, _ := setupTestEmployeeService()
	ctx := context.Background()

	if err := NewCRUDDemo(svc, nil).Run(ctx, &bytes.Buffer{}); err != nil {
		t.Fatalf("Run 应成功: %v", err)
	}

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望剩余 2 行，实际=%d", len(rows))
	}
	if rows[0].Name != "Jane Smith" || *rows[0].Department != "Marketing" || *rows[0].Age != 25 {
		t.Errorf("第一行不符: %s", rows[0])
	}
	if rows[1].Name != "Emily Davis" || *rows[1].Department != "IT" || *rows[1].Age != 35 {
		t.Errorf("第二行不符: %s", rows[1])
	}
}

func TestCRUDDemo_Run_SchemaError(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()
	boom := errors.New("access denied")

	err := NewCRUDDemo(svc, func(context.Context) error { return boom }).Run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, boom) {
		t.Errorf("期望透传建表错误，实际: %v", err)
	}
	if len(empRepo.employees) != 0 {
		t.Error("建表失败后不应继续插入")
	}
}

func TestCRUDDemo_Run_InsertError(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()
	empRepo.failWith = errMockDB

	var out bytes.Buffer
	err := NewCRUDDemo(svc, nil).Run(context.Background(), &out)
	if !errors.Is(err, errMockDB) {
		t.Errorf("期望透传驱动错误，实际: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("出错前不应有输出，实际=%q", out.String())
	}
}

// TestCRUDDemo_Run_SQLite 在真实 SQLite 库上跑完整流程
func TestCRUDDemo_Run_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "demo.db"),
		MaxOpenConns: 1,
	}
	logger := zap.NewNop()

	db, err := database.NewDB(cfg, "silent", logger)
	if err != nil {
		t.Fatalf("打开数据库失败: %v", err)
	}
	defer database.Close(db)

	svc := NewService(repository.NewRepository(db), logger)
	demo := NewCRUDDemo(svc.Employee, func(context.Context) error {
		return database.RunMigrations(cfg, logger)
	})

	var out bytes.Buffer
	if err := demo.Run(context.Background(), &out); err != nil {
		t.Fatalf("Run 应成功: %v", err)
	}
	if !strings.HasPrefix(out.String(), "3 records inserted.\n(1, John Doe, 30, HR)\n") {
		t.Errorf("输出开头不符: %q", out.String())
	}

	count, _ := svc.Employee.Count(context.Background())
	if count != 2 {
		t.Errorf("期望剩余 2 行，实际=%d", count)
	}
}
