package world

import (
	"math"
	"math/rand"

	"github.com/annel0/voxel-world/internal/util"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// Вероятности руд в каменном слое, из 100
const (
	diamondChance = 1 // значение 0
	coalChance    = 3 // значения 1..3
)

// dirtDepthRatio - доля высоты поверхности, ниже которой начинается камень
const dirtDepthRatio = 7.0 / 8.0

// SurfaceHook вызывается для каждого блока травы с позицией клетки над ним
type SurfaceHook func(above vec.Vec3)

// TerrainGenerator заполняет регион слоями камня, земли и травы по карте высот
type TerrainGenerator struct {
	noise     *util.Noise
	scale     float64
	amplitude float64
	bias      float64
	offset    [2]float64
}

// NewTerrainGenerator создаёт генератор рельефа
func NewTerrainGenerator(noise *util.Noise, scale, amplitude, bias float64, offset [2]float64) *TerrainGenerator {
	return &TerrainGenerator{
		noise:     noise,
		scale:     scale,
		amplitude: amplitude,
		bias:      bias,
		offset:    offset,
	}
}

// SurfaceHeight возвращает высоту поверхности H в глобальном столбце (x, z)
func (g *TerrainGenerator) SurfaceHeight(x, z int) float64 {
	n := g.noise.Noise2D(g.scale*float64(x)+g.offset[0], g.scale*float64(z)+g.offset[1])
	return g.amplitude*n + g.bias
}

// Generate заполняет регион. Для блоков ниже поверхности из rng берётся одно
// значение на клетку (руда или камень), обход идёт по x, y, z.
func (g *TerrainGenerator) Generate(r *Region, rng *rand.Rand, onSurface SurfaceHook) {
	origin := r.Origin()

	var heights [RegionSize][RegionSize]float64
	for x := 0; x < RegionSize; x++ {
		for z := 0; z < RegionSize; z++ {
			heights[x][z] = g.SurfaceHeight(origin.X+x, origin.Z+z)
		}
	}

	for x := 0; x < RegionSize; x++ {
		for y := 0; y < RegionSize; y++ {
			for z := 0; z < RegionSize; z++ {
				h := heights[x][z]
				gy := origin.Y + y
				if float64(gy) >= h {
					continue
				}

				local := vec.Vec3{X: x, Y: y, Z: z}
				surface := int(math.Floor(h))
				switch {
				case gy == surface:
					r.Set(local, block.GrassBlockID)
					if onSurface != nil {
						onSurface(vec.Vec3{X: origin.X + x, Y: gy + 1, Z: origin.Z + z})
					}
				case gy < int(math.Floor(h*dirtDepthRatio)):
					r.Set(local, undergroundBlock(rng))
				default:
					r.Set(local, block.DirtBlockID)
				}
			}
		}
	}
}

func undergroundBlock(rng *rand.Rand) block.BlockID {
	v := rng.Intn(100)
	switch {
	case v < diamondChance:
		return block.DiamondOreBlockID
	case v < diamondChance+coalChance:
		return block.CoalOreBlockID
	default:
		return block.StoneBlockID
	}
}
