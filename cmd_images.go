package main

import (
	"github.com/spf13/cobra"
)

func newImagesCommand() *cobra.Command {
	opts := DefaultOptions()
	opts.Fit = true
	opts.PenWidth = 0
	imgOpts := ImageOptions{Trim: true, Scale: 1}
	var (
		configPath string
		inputDir   string
		threshold  uint
	)
	cmd := &cobra.Command{
		Use:   "images",
		Short: "把目录中的图片排列成图片云",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, configPath, &opts); err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			paths, err := readImageDir(inputDir)
			if err != nil {
				return err
			}
			logger.Infof("找到 %d 个图片文件", len(paths))
			if imgOpts.Trim {
				logger.Debug("已开启透明区域裁切", "threshold", threshold)
			}
			imgOpts.Threshold = uint8(min(threshold, 255))

			prog := newProgress(logger)
			tags, err := loadImageTags(paths, imgOpts)
			if err != nil {
				return err
			}
			prog.done("Processed images")
			_, err = buildCloud(cmd, &opts, tags)
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "TOML 配置文件")
	fs.StringVarP(&inputDir, "input", "i", "input", "输入目录")
	fs.BoolVar(&imgOpts.Trim, "trim", imgOpts.Trim, "裁掉透明边缘")
	fs.UintVar(&threshold, "threshold", 0, "透明度阈值")
	fs.Float64Var(&imgOpts.Scale, "scale", imgOpts.Scale, "图片缩放比例")
	bindLayoutFlags(fs, &opts)
	bindOutputFlags(fs, &opts)
	return cmd
}
