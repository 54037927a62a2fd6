package components

import (
	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// TransformComponent 实体在世界坐标系中的位置
//
// Parent 非零时表示该实体挂载在父实体上，
// 每帧由 TransformSystem 计算 Position = 父实体.Position + Offset，
// 从而自动跟随父实体的轨道运动（例如名称标签跟随行星）。
type TransformComponent struct {
	// Position 世界坐标
	Position math32.Vector3

	// Parent 父实体ID，0 表示无父实体
	Parent ecs.EntityID

	// Offset 相对父实体的偏移（仅 Parent 非零时使用）
	Offset math32.Vector3
}
