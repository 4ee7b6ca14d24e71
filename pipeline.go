package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tagcloud/cloud"
)

// buildCloud 排序并放置标签，输出摘要，然后写出图片和布局文件。
// 螺旋线搜索达到上限时只保留已放置的标签并给出警告。
func buildCloud(cmd *cobra.Command, o *Options, tags []Tag) (*LayoutFile, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := sortTags(tags, o.Sort); err != nil {
		return nil, err
	}
	l, err := o.NewLayouter(logger)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	err = layoutTags(ctx, l, tags)
	placed := tags[:l.Len()]
	prog.done(fmt.Sprintf("Placed %d tags", len(placed)))
	out := cmd.OutOrStdout()
	switch {
	case errors.Is(err, cloud.ErrSearchExhausted):
		printWarning(out, "%d 个标签无法放置: %v", len(tags)-len(placed), err)
	case err != nil:
		return nil, err
	}

	lf := NewLayoutFile(l, o.Canvas(), placed)
	outputResult(out, "标签云", lf.Rects(), len(placed), len(tags))
	if err := writeOutputs(cmd, o, lf); err != nil {
		return nil, err
	}
	return lf, nil
}

// writeOutputs 按配置写出图片和布局文件
func writeOutputs(cmd *cobra.Command, o *Options, lf *LayoutFile) error {
	out := cmd.OutOrStdout()
	logger := loggerFromContext(cmd.Context())
	if o.OutputPath != "" {
		painter, err := NewPainter(o)
		if err != nil {
			return err
		}
		painter.Canvas = lf.Canvas
		prog := newProgress(logger)
		if err := painter.Save(o.OutputPath, lf.Tags); err != nil {
			return fmt.Errorf("保存图片 %s 失败: %w", o.OutputPath, err)
		}
		prog.done("Rendered " + o.OutputPath)
		printSuccess(out, "图片: %s", o.OutputPath)
	}
	if o.LayoutPath != "" {
		if err := WriteLayout(o.LayoutPath, lf); err != nil {
			return fmt.Errorf("保存布局文件 %s 失败: %w", o.LayoutPath, err)
		}
		printSuccess(out, "布局文件: %s", o.LayoutPath)
	}
	return nil
}
