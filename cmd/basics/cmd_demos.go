package main

import (
	"github.com/spf13/cobra"

	"course-basics/internal/datatypes"
	"course-basics/internal/methods"
	"course-basics/internal/oops"
)

var dogCmd = &cobra.Command{
	Use:   "dog",
	Short: "值对象：必填 name 与可选 age",
	Args:  cobra.NoArgs,
	RunE:  runDog,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "内置类型巡览：数值、字符串、切片、数组、集合、映射、布尔、nil",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "实例方法、类级方法与静态方法",
	Args:  cobra.NoArgs,
	RunE:  runMethods,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "按 dog、fetch、types、crud、methods 的顺序运行全部演示",
	Long: `依次运行五个演示，任何一个出错立即停止。
fetch 需要网络（或本地 sandbox），crud 需要可连接的数据库。`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func runDog(cmd *cobra.Command, args []string) error {
	oops.RunDemo(cmd.OutOrStdout())
	return nil
}

func runTypes(cmd *cobra.Command, args []string) error {
	datatypes.RunDemo(cmd.OutOrStdout())
	return nil
}

func runMethods(cmd *cobra.Command, args []string) error {
	methods.RunDemo(cmd.OutOrStdout())
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	for _, step := range []func(*cobra.Command, []string) error{
		runDog,
		runFetch,
		runTypes,
		runCrud,
		runMethods,
	} {
		if err := step(cmd, args); err != nil {
			return err
		}
	}
	return nil
}
