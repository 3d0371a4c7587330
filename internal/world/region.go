package world

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// RegionSize - длина ребра региона в блоках
const RegionSize = 16

// Blocks - трёхмерный массив блоков региона, Blocks[x][y][z]
type Blocks [RegionSize][RegionSize][RegionSize]block.BlockID

// Region представляет кубический участок мира размером 16x16x16 блоков
type Region struct {
	Coords vec.Vec3 // Координаты региона в сетке регионов

	blocks    Blocks
	surface   *mesh.Surface // nil, если у региона нет ни одной видимой грани
	transform mgl32.Mat4
	rebuilds  int // сколько раз перестраивалась сетка
}

// NewRegion создаёт пустой (заполненный воздухом) регион
func NewRegion(coords vec.Vec3) *Region {
	origin := coords.Scale(RegionSize)
	return &Region{
		Coords:    coords,
		transform: mgl32.Translate3D(float32(origin.X), float32(origin.Y), float32(origin.Z)),
	}
}

// NewRegionFromBlocks создаёт регион из готового массива блоков
func NewRegionFromBlocks(coords vec.Vec3, blocks *Blocks) *Region {
	r := NewRegion(coords)
	r.blocks = *blocks
	return r
}

// Get возвращает ID блока по локальным координатам
func (r *Region) Get(local vec.Vec3) block.BlockID {
	return r.blocks[local.X][local.Y][local.Z]
}

// Set устанавливает блок по локальным координатам. Сетка не перестраивается.
func (r *Region) Set(local vec.Vec3, id block.BlockID) {
	r.blocks[local.X][local.Y][local.Z] = id
}

// Blocks возвращает копию массива блоков
func (r *Region) Blocks() Blocks {
	return r.blocks
}

// Origin возвращает глобальные координаты минимального угла региона
func (r *Region) Origin() vec.Vec3 {
	return r.Coords.Scale(RegionSize)
}

// Transform возвращает матрицу размещения региона в мире
func (r *Region) Transform() mgl32.Mat4 {
	return r.transform
}

// Surface возвращает закэшированную сетку или nil
func (r *Region) Surface() *mesh.Surface {
	return r.surface
}

// HasMesh возвращает true, если у региона есть видимые грани
func (r *Region) HasMesh() bool {
	return r.surface != nil
}

// MeshRebuilds возвращает количество перестроений сетки
func (r *Region) MeshRebuilds() int {
	return r.rebuilds
}

// CountSolid возвращает количество непустых блоков
func (r *Region) CountSolid() int {
	n := 0
	for x := range r.blocks {
		for y := range r.blocks[x] {
			for z := range r.blocks[x][y] {
				if r.blocks[x][y][z] != block.AirBlockID {
					n++
				}
			}
		}
	}
	return n
}

// InRegion проверяет, лежит ли локальная координата внутри региона
func InRegion(local vec.Vec3) bool {
	return local.X >= 0 && local.X < RegionSize &&
		local.Y >= 0 && local.Y < RegionSize &&
		local.Z >= 0 && local.Z < RegionSize
}
