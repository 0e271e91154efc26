// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包保存该文件系统，让其他包可以按路径读取。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// DataPrefix 所有资源路径的前缀
const DataPrefix = "data/"

var dataFS fs.FS

// Init 设置资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用；传入 nil 恢复未初始化状态
func Init(data fs.FS) {
	dataFS = data
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return dataFS != nil
}

// normalize 统一为正斜杠并去掉 "./" 前缀
func normalize(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, DataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with %q)", path, DataPrefix)
	}
	return path, nil
}

// ReadFile 读取文件内容
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if dataFS == nil {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	if dataFS == nil {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}
