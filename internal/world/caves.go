package world

import (
	"github.com/annel0/voxel-world/internal/util"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// CaveCarver вырезает пещеры: клетки, где трёхмерный шум выше порога, становятся воздухом
type CaveCarver struct {
	noise  *util.Noise
	scale  float64
	cutoff float64
}

func NewCaveCarver(noise *util.Noise, scale, cutoff float64) *CaveCarver {
	return &CaveCarver{noise: noise, scale: scale, cutoff: cutoff}
}

// IsCave проверяет глобальную клетку
func (c *CaveCarver) IsCave(pos vec.Vec3) bool {
	return c.noise.Noise3D(
		c.scale*float64(pos.X),
		c.scale*float64(pos.Y),
		c.scale*float64(pos.Z),
	) > c.cutoff
}

// Carve обрабатывает все клетки региона и возвращает число вырезанных блоков
func (c *CaveCarver) Carve(r *Region) int {
	origin := r.Origin()
	carved := 0
	for x := 0; x < RegionSize; x++ {
		for y := 0; y < RegionSize; y++ {
			for z := 0; z < RegionSize; z++ {
				local := vec.Vec3{X: x, Y: y, Z: z}
				if !c.IsCave(origin.Add(local)) {
					continue
				}
				if r.Get(local) != block.AirBlockID {
					carved++
				}
				r.Set(local, block.AirBlockID)
			}
		}
	}
	return carved
}
