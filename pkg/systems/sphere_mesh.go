package systems

import (
	"math"

	"cogentcore.org/core/math32"
)

// sphereMesh 单位球的经纬网格
// 顶点按纬线从北极到南极排列，每条纬线 segments+1 个顶点（接缝处重复以便纹理环绕）
type sphereMesh struct {
	segments int
	normals  []math32.Vector3 // 单位法线，同时也是单位球面上的位置
	uvs      [][2]float32     // 纹理坐标，u 沿经度，v 从北极 0 到南极 1
	indices  []uint16         // 三角形索引
}

// newSphereMesh 生成 segments×segments 的单位球网格
// 极点处的退化三角形被省略
func newSphereMesh(segments int) *sphereMesh {
	if segments < 3 {
		segments = 3
	}
	n := segments
	m := &sphereMesh{
		segments: n,
		normals:  make([]math32.Vector3, 0, (n+1)*(n+1)),
		uvs:      make([][2]float32, 0, (n+1)*(n+1)),
		indices:  make([]uint16, 0, n*n*6),
	}

	for iy := 0; iy <= n; iy++ {
		v := float64(iy) / float64(n)
		theta := v * math.Pi
		for ix := 0; ix <= n; ix++ {
			u := float64(ix) / float64(n)
			phi := u * 2 * math.Pi
			m.normals = append(m.normals, math32.Vec3(
				float32(-math.Cos(phi)*math.Sin(theta)),
				float32(math.Cos(theta)),
				float32(math.Sin(phi)*math.Sin(theta)),
			))
			m.uvs = append(m.uvs, [2]float32{float32(u), float32(v)})
		}
	}

	row := n + 1
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			a := uint16(iy*row + ix + 1)
			b := uint16(iy*row + ix)
			c := uint16((iy+1)*row + ix)
			d := uint16((iy+1)*row + ix + 1)
			if iy != 0 {
				m.indices = append(m.indices, a, b, d)
			}
			if iy != n-1 {
				m.indices = append(m.indices, b, c, d)
			}
		}
	}
	return m
}

// vertexCount 顶点数量
func (m *sphereMesh) vertexCount() int {
	return len(m.normals)
}

// triangleCount 三角形数量
func (m *sphereMesh) triangleCount() int {
	return len(m.indices) / 3
}
