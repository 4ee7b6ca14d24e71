package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

func newRandomCommand() *cobra.Command {
	opts := DefaultOptions()
	var (
		configPath   string
		count        int
		seed         int64
		randomCenter bool
		minHeight    int
		maxHeight    int
		minRatio     int
		maxRatio     int
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "放置随机尺寸的矩形",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, configPath, &opts); err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("invalid count %d", count)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			loggerFromContext(cmd.Context()).Debug("random layout", "seed", seed, "count", count)

			sizes := NewRandomSizes(rand.New(rand.NewSource(seed)))
			sizes.MinHeight, sizes.MaxHeight = minHeight, maxHeight
			sizes.MinRatio, sizes.MaxRatio = minRatio, maxRatio
			if err := sizes.Validate(); err != nil {
				return err
			}
			if randomCenter {
				c := sizes.RandomCenter(opts.Canvas())
				opts.CenterX, opts.CenterY = c.X, c.Y
			}
			_, err := buildCloud(cmd, &opts, sizes.Tags(count))
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "TOML 配置文件")
	fs.IntVarP(&count, "count", "n", 50, "矩形数量")
	fs.Int64Var(&seed, "seed", 0, "随机数种子，默认使用当前时间")
	fs.BoolVar(&randomCenter, "random-center", false, "在画布中间四分之一区域内随机选择中心")
	fs.IntVar(&minHeight, "min-height", 60, "最小高度")
	fs.IntVar(&maxHeight, "max-height", 120, "最大高度(不含)")
	fs.IntVar(&minRatio, "min-ratio", 2, "最小宽高比")
	fs.IntVar(&maxRatio, "max-ratio", 4, "最大宽高比(不含)")
	bindLayoutFlags(fs, &opts)
	bindOutputFlags(fs, &opts)
	return cmd
}
