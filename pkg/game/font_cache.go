package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontCache 按字号缓存字体
// 字体数据来自 Go 字体族，无需外部资源文件
type FontCache struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[fontKey]*text.GoTextFace
}

type fontKey struct {
	bold bool
	size float64
}

// NewFontCache 解析内置字体
func NewFontCache() (*FontCache, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create regular font source: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create bold font source: %w", err)
	}
	return &FontCache{
		regular: regular,
		bold:    bold,
		faces:   make(map[fontKey]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号的常规字体
func (fc *FontCache) Face(size float64) *text.GoTextFace {
	return fc.face(fontKey{size: size})
}

// BoldFace 返回指定字号的粗体
func (fc *FontCache) BoldFace(size float64) *text.GoTextFace {
	return fc.face(fontKey{bold: true, size: size})
}

func (fc *FontCache) face(key fontKey) *text.GoTextFace {
	if f, ok := fc.faces[key]; ok {
		return f
	}
	source := fc.regular
	if key.bold {
		source = fc.bold
	}
	f := &text.GoTextFace{
		Source:    source,
		Size:      key.size,
		Direction: text.DirectionLeftToRight,
	}
	fc.faces[key] = f
	return f
}
