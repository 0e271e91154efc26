package game

// TextEntry 一条屏幕文字
type TextEntry struct {
	Content string
	Visible bool
}

// TextBoard TextSurface 的内存实现
// RoundSystem 写入，RenderSystem 读取并绘制
type TextBoard struct {
	entries map[TextID]*TextEntry
}

// NewTextBoard 创建空的文字板
func NewTextBoard() *TextBoard {
	return &TextBoard{entries: make(map[TextID]*TextEntry)}
}

// ShowText 设置内容并显示
func (tb *TextBoard) ShowText(id TextID, content string) {
	entry, ok := tb.entries[id]
	if !ok {
		entry = &TextEntry{}
		tb.entries[id] = entry
	}
	entry.Content = content
	entry.Visible = true
}

// Hide 隐藏文字（保留内容）
func (tb *TextBoard) Hide(id TextID) {
	if entry, ok := tb.entries[id]; ok {
		entry.Visible = false
	}
}

// Get 返回文字及其是否可见
func (tb *TextBoard) Get(id TextID) (string, bool) {
	entry, ok := tb.entries[id]
	if !ok {
		return "", false
	}
	return entry.Content, entry.Visible
}

// VisibleIDs 返回当前可见的文字（按 AllTextIDs 顺序）
func (tb *TextBoard) VisibleIDs() []TextID {
	result := make([]TextID, 0, len(tb.entries))
	for _, id := range AllTextIDs {
		if entry, ok := tb.entries[id]; ok && entry.Visible {
			result = append(result, id)
		}
	}
	return result
}
