package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"tagcloud/cloud"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

// printField 输出一行 "名称 值"
func printField(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render(label), styleNumber.Render(fmt.Sprint(value)))
}

// outputResult 输出布局结果
func outputResult(w io.Writer, title string, rects []cloud.Rect, placed, total int) {
	fmt.Fprintln(w, styleTitle.Render(title))
	if bounds, ok := cloud.Bounds(rects); ok {
		printField(w, "布局区域", fmt.Sprintf("%dx%d", bounds.Width, bounds.Height))
	}
	printField(w, "已放置", fmt.Sprintf("%d/%d", placed, total))
	printField(w, "总面积", cloud.UsedArea(rects))
	printField(w, "半径", fmt.Sprintf("%.1f", cloud.Radius(rects)))
	printField(w, "密度", fmt.Sprintf("%.2f%%", cloud.Density(rects)*100))
}

// printSuccess 输出一行成功消息
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

// printWarning 输出一行警告消息
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleWarning.Render(iconWarning), fmt.Sprintf(format, args...))
}
