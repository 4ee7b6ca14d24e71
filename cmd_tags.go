package main

import (
	"github.com/spf13/cobra"
)

func newTagsCommand() *cobra.Command {
	opts := DefaultOptions()
	opts.Labels = true
	opts.Sort = "weight"
	sizer := DefaultTagSizer()
	var configPath string
	cmd := &cobra.Command{
		Use:   "tags <file>",
		Short: "按权重放置标签列表",
		Long: `读取标签列表并生成标签云。

每行一个标签，格式为 "名称 [权重]"，权重默认为 1，重复的名称权重累加。
空行和以 # 开头的行被忽略。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, configPath, &opts); err != nil {
				return err
			}
			tags, err := readTagFile(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("Read tag list", "path", args[0], "tags", len(tags))
			sizer.Apply(tags)
			_, err = buildCloud(cmd, &opts, tags)
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "TOML 配置文件")
	fs.IntVar(&sizer.MinHeight, "min-font", sizer.MinHeight, "最小权重对应的高度")
	fs.IntVar(&sizer.MaxHeight, "max-font", sizer.MaxHeight, "最大权重对应的高度")
	fs.Float64Var(&sizer.CharRatio, "char-ratio", sizer.CharRatio, "字符宽度与高度之比")
	bindLayoutFlags(fs, &opts)
	bindOutputFlags(fs, &opts)
	return cmd
}
