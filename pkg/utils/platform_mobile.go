//go:build mobile

package utils

// IsMobile 移动端构建恒为 true（没有退出键和全屏切换）
func IsMobile() bool {
	return true
}
