package components

// VisibilityGroupOrbits 所有轨道线共享的可见性分组
const VisibilityGroupOrbits = "orbits"

// VisibilityGroupLabels 所有名称标签共享的可见性分组
const VisibilityGroupLabels = "labels"

// VisibilityComponent 控制实体是否参与渲染
type VisibilityComponent struct {
	Visible bool
	// Group 共享开关的分组名，为空表示不属于任何分组
	Group string
}
