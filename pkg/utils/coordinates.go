// Package utils 提供通用工具函数
//
// coordinates.go 负责世界坐标与屏幕坐标的转换。
//
// # 坐标系统
//
//   - 世界坐标：单位为米，原点在画面中心，Y 轴向上
//   - 屏幕坐标：单位为像素，原点在左上角，Y 轴向下
//
// # 转换公式
//
//	screenX = width/2  + worldX * ppu
//	screenY = height/2 - worldY * ppu
package utils

// Viewport 逻辑屏幕与世界坐标的对应关系
type Viewport struct {
	Width, Height int     // 逻辑屏幕尺寸（像素）
	PixelsPerUnit float64 // 每个世界单位对应的像素数
}

// WorldToScreen 世界坐标转屏幕坐标
func (v Viewport) WorldToScreen(x, y float64) (float64, float64) {
	return float64(v.Width)/2 + x*v.PixelsPerUnit, float64(v.Height)/2 - y*v.PixelsPerUnit
}

// ScreenToWorld 屏幕坐标转世界坐标
func (v Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - float64(v.Width)/2) / v.PixelsPerUnit, (float64(v.Height)/2 - sy) / v.PixelsPerUnit
}

// WorldLength 世界长度转像素长度
func (v Viewport) WorldLength(l float64) float64 {
	return l * v.PixelsPerUnit
}

// RelativeRect 按屏幕比例（中心点 + 尺寸）计算像素矩形
// 返回左上角坐标和宽高
func (v Viewport) RelativeRect(relX, relY, relW, relH float64) (x, y, w, h float64) {
	w = relW * float64(v.Width)
	h = relH * float64(v.Height)
	x = relX*float64(v.Width) - w/2
	y = relY*float64(v.Height) - h/2
	return x, y, w, h
}

// PointInRect 点是否在矩形内（含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
