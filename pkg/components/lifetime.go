package components

// LifetimeComponent 管理实体的生命周期
// 用于延迟销毁（如爆炸特效在播放完毕后自动清理）
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Progress 返回 0~1 的生命进度，用于渲染淡出
func (l *LifetimeComponent) Progress() float64 {
	if l.MaxLifetime <= 0 {
		return 1
	}
	p := l.CurrentLifetime / l.MaxLifetime
	if p > 1 {
		return 1
	}
	return p
}
