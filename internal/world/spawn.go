package world

import (
	"github.com/annel0/voxel-world/internal/physics"
	"github.com/annel0/voxel-world/internal/vec"
)

// FindSpawn ищет в столбце (x, z) самую высокую позицию, где коллайдер
// помещается и стоит на твёрдом блоке. Просматриваются только
// сгенерированные регионы этого столбца.
func (w *World) FindSpawn(x, z int, collider *physics.BoxCollider) (vec.Vec3, bool) {
	column := vec.Vec3{X: x, Z: z}.ToRegionCoords(RegionSize)

	minY, maxY, found := 0, 0, false
	for _, c := range w.store.Coords() {
		if c.X != column.X || c.Z != column.Z {
			continue
		}
		if !found || c.Y < minY {
			minY = c.Y
		}
		if !found || c.Y > maxY {
			maxY = c.Y
		}
		found = true
	}
	if !found {
		return vec.Vec3{}, false
	}

	for y := (maxY+1)*RegionSize - 1; y > minY*RegionSize; y-- {
		pos := vec.Vec3{X: x, Y: y, Z: z}
		if physics.CanMoveToPosition(pos, collider, w) && physics.IsGrounded(pos, collider, w) {
			return pos, true
		}
	}
	return vec.Vec3{}, false
}
