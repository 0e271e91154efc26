package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle 字体样式
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
)

// ResourceManager 字体资源缓存
//
// 字体数据来自 Go 字体族（编译进二进制），按 (样式, 字号) 缓存 GoTextFace。
type ResourceManager struct {
	sources   map[FontStyle]*text.GoTextFaceSource
	faceCache map[string]*text.GoTextFace
}

// NewResourceManager 解析内置字体
func NewResourceManager() (*ResourceManager, error) {
	rm := &ResourceManager{
		sources:   make(map[FontStyle]*text.GoTextFaceSource),
		faceCache: make(map[string]*text.GoTextFace),
	}

	fonts := map[FontStyle][]byte{
		FontRegular: goregular.TTF,
		FontBold:    gobold.TTF,
	}
	for style, data := range fonts {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source %d: %w", style, err)
		}
		rm.sources[style] = source
	}

	return rm, nil
}

// Font 返回指定样式和字号的字体，首次请求时创建并缓存
func (rm *ResourceManager) Font(style FontStyle, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%d:%.1f", style, size)
	if face, ok := rm.faceCache[cacheKey]; ok {
		return face, nil
	}

	source, ok := rm.sources[style]
	if !ok {
		return nil, fmt.Errorf("unknown font style %d", style)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %.1f", size)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.faceCache[cacheKey] = face
	return face, nil
}
