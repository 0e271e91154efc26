//go:build !mobile

// Package mobile 的桌面端占位
//
// 普通构建时只有 Dummy，游戏入口在 mobile.go（-tags mobile）。
package mobile

// Dummy 让 ./mobile 在桌面端也能通过编译
func Dummy() {}
