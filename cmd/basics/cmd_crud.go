package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-basics/internal/repository"
	"course-basics/internal/service"
	"course-basics/pkg/database"
)

var (
	resetTable bool
	dropTable  bool
)

var crudCmd = &cobra.Command{
	Use:   "crud",
	Short: "在 employees 表上演示建表、批量插入、查询、更新、删除",
	Long: `连接 db 配置的数据库（默认 MySQL localhost:3306/restapi），
执行迁移后按顺序插入三名员工、打印全表、调整 Jane Smith 的部门、删除 John Doe。

演示不清理数据，重复运行会累积行；加 --reset 从空表开始，
加 --drop 先回滚全部迁移再重建表（自增 id 也从 1 开始）。`,
	Args: cobra.NoArgs,
	RunE: runCrud,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "把 employees 表导出为 .xlsx 写到 export.dir",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

// openServices 连接数据库并组装 Repository → Service
func openServices() (*gorm.DB, *service.Service, error) {
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewRepository(db)
	return db, service.NewService(repo, logger), nil
}

func runCrud(cmd *cobra.Command, args []string) error {
	db, svc, err := openServices()
	if err != nil {
		return err
	}
	defer database.Close(db)

	schema := func(ctx context.Context) error {
		if dropTable {
			if err := database.DropAll(&cfg.Database, logger); err != nil {
				return err
			}
		}
		if err := database.RunMigrations(&cfg.Database, logger); err != nil {
			return err
		}
		if resetTable {
			if _, err := svc.Employee.Reset(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	demo := service.NewCRUDDemo(svc.Employee, schema)
	return demo.Run(commandContext(cmd), cmd.OutOrStdout())
}

func runExport(cmd *cobra.Command, args []string) error {
	db, svc, err := openServices()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.RunMigrations(&cfg.Database, logger); err != nil {
		return err
	}

	buf, filename, err := svc.Export.ExportEmployees(commandContext(cmd))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return fmt.Errorf("创建导出目录失败: %w", err)
	}
	path := filepath.Join(cfg.Export.Dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入导出文件失败: %w", err)
	}

	logger.Info("导出完成", zap.String("path", path), zap.Int("bytes", buf.Len()))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
