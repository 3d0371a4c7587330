package world

import (
	"math/rand"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// BlockPlacer принимает блоки, поставленные генератором. Запись в
// несгенерированный регион откладывается до его генерации.
type BlockPlacer interface {
	PlaceGenerated(pos vec.Vec3, id block.BlockID)
}

// Диапазоны значений rng.Intn(100) для клетки над травой
const (
	treeRoll        = 40 // ровно 40 - дерево
	groundCoverFrom = 50 // 50..99 - растительность
)

// Высота ствола и границы кроны относительно корня дерева
const (
	trunkHeight = 5
	canopyLow   = 3
	canopyHigh  = 5
)

// FoliagePlacer ставит растительность и деревья над травой
type FoliagePlacer struct {
	placer BlockPlacer
}

func NewFoliagePlacer(placer BlockPlacer) *FoliagePlacer {
	return &FoliagePlacer{placer: placer}
}

// Decorate решает, что поставить в клетку pos над травой
func (f *FoliagePlacer) Decorate(pos vec.Vec3, rng *rand.Rand) {
	v := rng.Intn(100)
	switch {
	case v >= groundCoverFrom:
		f.placer.PlaceGenerated(pos, groundCover(rng.Intn(10)))
	case v == treeRoll:
		f.PlaceTree(pos)
	}
}

func groundCover(d int) block.BlockID {
	switch {
	case d <= 6:
		return block.TallGrassBlockID
	case d == 7:
		return block.FernBlockID
	case d == 8:
		return block.RoseBlockID
	default:
		return block.DandelionBlockID
	}
}

// PlaceTree ставит дерево с корнем root: сначала ствол снизу вверх,
// затем листву в порядке dx, dz, dy.
func (f *FoliagePlacer) PlaceTree(root vec.Vec3) {
	for dy := 0; dy < trunkHeight; dy++ {
		f.placer.PlaceGenerated(root.Add(vec.Vec3{Y: dy}), block.LogBlockID)
	}

	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := canopyLow; dy <= canopyHigh; dy++ {
				if skipLeaf(dx, dy, dz) {
					continue
				}
				f.placer.PlaceGenerated(root.Add(vec.Vec3{X: dx, Y: dy, Z: dz}), block.LeavesBlockID)
			}
		}
	}
}

// skipLeaf: на верхнем ярусе нет углов, на нижнем нет центра (там ствол)
func skipLeaf(dx, dy, dz int) bool {
	if dy == canopyHigh && dx != 0 && dz != 0 {
		return true
	}
	return dy == canopyLow && dx == 0 && dz == 0
}
