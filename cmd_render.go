package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tagcloud/cloud"
)

func newRenderCommand() *cobra.Command {
	opts := DefaultOptions()
	var configPath string
	cmd := &cobra.Command{
		Use:   "render <layout>",
		Short: "重新绘制保存的布局文件",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, configPath, &opts); err != nil {
				return err
			}
			if opts.OutputPath == "" {
				return errors.New("未指定输出图片")
			}
			lf, err := ReadLayout(args[0])
			if err != nil {
				return err
			}
			rects := lf.Rects()
			out := cmd.OutOrStdout()
			outputResult(out, args[0], rects, len(rects), len(rects))
			if overlaps := countOverlaps(rects); overlaps > 0 {
				printWarning(out, "布局中有 %d 对重叠的矩形", overlaps)
			}

			painter, err := NewPainter(&opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("fit") {
				painter.Canvas = lf.Canvas
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			if err := painter.Save(opts.OutputPath, lf.Tags); err != nil {
				return fmt.Errorf("保存图片 %s 失败: %w", opts.OutputPath, err)
			}
			prog.done("Rendered " + opts.OutputPath)
			printSuccess(out, "图片: %s", opts.OutputPath)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "TOML 配置文件")
	bindOutputFlags(fs, &opts)
	fs.Lookup("layout").Hidden = true
	return cmd
}

// countOverlaps 返回互相重叠的矩形对数
func countOverlaps(rects []cloud.Rect) int {
	n := 0
	for i := 0; i < len(rects)-1; i++ {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				n++
			}
		}
	}
	return n
}
