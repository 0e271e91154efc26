package components

// PositionComponent 实体在世界坐标系中的位置
// 世界坐标以米为单位，原点在画面中心，Y 轴向上
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 实体速度（世界单位/秒）
type VelocityComponent struct {
	VX, VY float64
}

// BodyComponent 圆形刚体参数，供物理系统使用
type BodyComponent struct {
	Radius float64
	Mass   float64
}
