package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/spf13/cobra"

	"tagcloud/cloud"
)

// example 是一个示例布局：正方形画布，中心位于画布中心
type example struct {
	name  string
	side  int
	count int
}

var examples = []example{
	{"example1", 3000, 200},
	{"example2", 2000, 100},
	{"example3", 1200, 30},
}

func newExamplesCommand() *cobra.Command {
	var (
		outputDir string
		format    string
		seed      int64
	)
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "生成三个随机矩形的示例布局",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			for _, ex := range examples {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				opts := DefaultOptions()
				opts.CanvasWidth, opts.CanvasHeight = ex.side, ex.side
				opts.OutputPath = filepath.Join(outputDir, ex.name+"."+format)
				opts.LayoutPath = filepath.Join(outputDir, ex.name+".json")
				loggerFromContext(cmd.Context()).Info("Generating example", "name", ex.name, "center", cloud.NewPoint(ex.side/2, ex.side/2), "count", ex.count)
				if _, err := buildCloud(cmd, &opts, NewRandomSizes(rng).Tags(ex.count)); err != nil {
					return fmt.Errorf("%s: %w", ex.name, err)
				}
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&outputDir, "output", "o", ".", "输出目录")
	fs.StringVar(&format, "format", "png", "图片格式 (png, jpg, bmp, svg)")
	fs.Int64Var(&seed, "seed", 1, "随机数种子")
	return cmd
}
