package mesh

import (
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex - вершина сетки поверхности региона
type Vertex struct {
	Position mgl32.Vec3 // локальные координаты внутри региона
	UV       mgl32.Vec2 // координаты в атласе, в единицах плиток
	Variant  int32      // block.RenderVariant для выбора ветки шейдера
}

// PushFace добавляет квадрат грани face для блока в позиции pos
func PushFace(vertices []Vertex, pos mgl32.Vec3, face Face, tile block.Tile, variant block.RenderVariant) []Vertex {
	corners := &faceCorners[face]
	base := mgl32.Vec2{tile.U, tile.V}

	for _, i := range quadIndices {
		vertices = append(vertices, Vertex{
			Position: pos.Add(corners[i]),
			UV:       base.Add(cornerUV[i]),
			Variant:  int32(variant),
		})
	}
	return vertices
}
