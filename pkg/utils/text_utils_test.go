package utils

import (
	"reflect"
	"testing"
)

// fixedWidth 每个字符 10 像素
func fixedWidth(s string) float64 {
	return float64(len(s)) * 10
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "tap spheres", 200, []string{"tap spheres"}},
		{"按空格换行", "tap the spheres that match", 100, []string{"tap the", "spheres", "that match"}},
		{"保留换行符", "one\n\ntwo", 100, []string{"one", "", "two"}},
		{"超长单词独占一行", "a extraordinarily b", 50, []string{"a", "extraordinarily", "b"}},
		{"空文本", "", 100, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, tt.maxWidth, fixedWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q) = %q, 期望 %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	if got := WrapText("a b\nc", 0, fixedWidth); !reflect.DeepEqual(got, []string{"a b", "c"}) {
		t.Errorf("zero maxWidth: got %q", got)
	}
	if got := WrapText("a b", 100, nil); !reflect.DeepEqual(got, []string{"a b"}) {
		t.Errorf("nil measure: got %q", got)
	}
	if FaceMeasure(nil)("abc") != 0 {
		t.Error("nil face should measure 0")
	}
}
