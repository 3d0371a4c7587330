package physics

import (
	"github.com/annel0/voxel-world/internal/vec"
)

// SolidChecker сообщает, занята ли клетка мира твёрдым блоком
type SolidChecker interface {
	IsSolid(pos vec.Vec3) bool
}

// SolidCheckerFunc позволяет использовать функцию как SolidChecker
type SolidCheckerFunc func(pos vec.Vec3) bool

func (f SolidCheckerFunc) IsSolid(pos vec.Vec3) bool {
	return f(pos)
}

// BoxCollider представляет коллайдер-параллелепипед. Позиция коллайдера -
// клетка под центром основания: по X и Z бокс центрирован, по Y растёт вверх.
type BoxCollider struct {
	Width  int // Размер по X в блоках
	Height int // Размер по Y в блоках
	Depth  int // Размер по Z в блоках
}

// NewBoxCollider создаёт новый коллайдер с указанными размерами
func NewBoxCollider(width, height, depth int) *BoxCollider {
	return &BoxCollider{
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// min возвращает минимальный угол бокса (включительно)
func (bc *BoxCollider) min(pos vec.Vec3) vec.Vec3 {
	return vec.Vec3{X: pos.X - bc.Width/2, Y: pos.Y, Z: pos.Z - bc.Depth/2}
}

// max возвращает максимальный угол бокса (не включительно)
func (bc *BoxCollider) max(pos vec.Vec3) vec.Vec3 {
	return bc.min(pos).Add(vec.Vec3{X: bc.Width, Y: bc.Height, Z: bc.Depth})
}

// IsPointInside проверяет, находится ли клетка внутри коллайдера
func (bc *BoxCollider) IsPointInside(colliderPos, point vec.Vec3) bool {
	lo, hi := bc.min(colliderPos), bc.max(colliderPos)
	for axis := 0; axis < 3; axis++ {
		p := point.Axis(axis)
		if p < lo.Axis(axis) || p >= hi.Axis(axis) {
			return false
		}
	}
	return true
}

// CheckBoxCollision проверяет пересечение двух коллайдеров
func CheckBoxCollision(pos1 vec.Vec3, collider1 *BoxCollider, pos2 vec.Vec3, collider2 *BoxCollider) bool {
	lo1, hi1 := collider1.min(pos1), collider1.max(pos1)
	lo2, hi2 := collider2.min(pos2), collider2.max(pos2)

	for axis := 0; axis < 3; axis++ {
		if hi1.Axis(axis) <= lo2.Axis(axis) || lo1.Axis(axis) >= hi2.Axis(axis) {
			return false
		}
	}
	return true
}

// GetCollisionPoints возвращает все клетки, которые занимает коллайдер.
// Для коллайдера 1x1x1 это одна клетка pos.
func GetCollisionPoints(pos vec.Vec3, collider *BoxCollider) []vec.Vec3 {
	if collider.Width <= 1 && collider.Height <= 1 && collider.Depth <= 1 {
		return []vec.Vec3{pos}
	}

	lo, hi := collider.min(pos), collider.max(pos)
	points := make([]vec.Vec3, 0, collider.Width*collider.Height*collider.Depth)
	for x := lo.X; x < hi.X; x++ {
		for y := lo.Y; y < hi.Y; y++ {
			for z := lo.Z; z < hi.Z; z++ {
				points = append(points, vec.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return points
}

// CanMoveToPosition проверяет, помещается ли коллайдер в позицию newPos,
// то есть ни одна из занимаемых клеток не твёрдая
func CanMoveToPosition(newPos vec.Vec3, collider *BoxCollider, world SolidChecker) bool {
	for _, point := range GetCollisionPoints(newPos, collider) {
		if world.IsSolid(point) {
			return false
		}
	}
	return true
}

// IsGrounded проверяет, стоит ли коллайдер на твёрдом блоке
func IsGrounded(pos vec.Vec3, collider *BoxCollider, world SolidChecker) bool {
	lo, hi := collider.min(pos), collider.max(pos)
	for x := lo.X; x < hi.X; x++ {
		for z := lo.Z; z < hi.Z; z++ {
			if world.IsSolid(vec.Vec3{X: x, Y: pos.Y - 1, Z: z}) {
				return true
			}
		}
	}
	return false
}
