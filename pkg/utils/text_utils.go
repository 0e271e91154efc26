package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回一行文字的像素宽度
type MeasureFunc func(s string) float64

// FaceMeasure 使用字体测量宽度
func FaceMeasure(face *text.GoTextFace) MeasureFunc {
	return func(s string) float64 {
		if s == "" || face == nil {
			return 0
		}
		width, _ := text.Measure(s, face, 0)
		return width
	}
}

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 原有的换行符保留，空行保留
//   - 在空格处断行
//   - 单个单词超过最大宽度时独占一行，不再拆分
func WrapText(textStr string, maxWidth float64, measure MeasureFunc) []string {
	if measure == nil || maxWidth <= 0 {
		return strings.Split(textStr, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
