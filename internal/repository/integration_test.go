//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-basics/config"
	"course-basics/internal/model"
	"course-basics/internal/repository"
	"course-basics/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test Setup: 连接真实 MySQL / PostgreSQL
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func integrationConfig() *config.DatabaseConfig {
	cfg := &config.DatabaseConfig{
		Driver:       envOr("TEST_DB_DRIVER", config.DriverMySQL),
		Host:         envOr("TEST_DB_HOST", "localhost"),
		Name:         envOr("TEST_DB_NAME", "restapi_test"),
		User:         envOr("TEST_DB_USER", "root"),
		Password:     envOr("TEST_DB_PASSWORD", "admin"),
		SSLMode:      "disable",
		Timezone:     "UTC",
		MaxOpenConns: 1,
	}
	defaultPort := "3306"
	if cfg.Driver == config.DriverPostgres {
		defaultPort = "5432"
	}
	cfg.Port, _ = strconv.Atoi(envOr("TEST_DB_PORT", defaultPort))
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestMain(m *testing.M) {
	cfg := integrationConfig()
	logger := zap.NewNop()

	if err := database.RunMigrations(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "迁移失败: %v\n", err)
		os.Exit(1)
	}

	var err error
	testDB, err = database.NewDB(cfg, "silent", logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	_ = database.Close(testDB)
	os.Exit(code)
}

func TestIntegration_EmployeeLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEmployeeRepo(testDB)

	if _, err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("清空表失败: %v", err)
	}

	n, err := repo.CreateBatch(ctx, []model.Employee{
		{Name: "John Doe", Age: model.IntPtr(30), Department: model.StringPtr("HR")},
		{Name: "Jane Smith", Age: model.IntPtr(25), Department: model.StringPtr("Finance")},
		{Name: "Emily Davis", Age: model.IntPtr(35), Department: model.StringPtr("IT")},
	})
	if err != nil || n != 3 {
		t.Fatalf("期望插入 3 行，实际=%d, %v", n, err)
	}

	if n, err := repo.UpdateDepartmentByName(ctx, "Jane Smith", "Marketing"); err != nil || n != 1 {
		t.Errorf("期望更新 1 行，实际=%d, %v", n, err)
	}
	if n, err := repo.DeleteByName(ctx, "John Doe"); err != nil || n != 1 {
		t.Errorf("期望删除 1 行，实际=%d, %v", n, err)
	}

	emps, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(emps) != 2 {
		t.Fatalf("期望剩余 2 行，实际=%d", len(emps))
	}
	if emps[0].Name != "Jane Smith" || *emps[0].Department != "Marketing" {
		t.Errorf("第一行不符: %s", emps[0])
	}
	if emps[1].Name != "Emily Davis" || *emps[1].Department != "IT" {
		t.Errorf("第二行不符: %s", emps[1])
	}
}
