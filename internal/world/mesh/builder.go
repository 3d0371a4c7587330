package mesh

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/go-gl/mathgl/mgl32"
)

// Source - данные региона, по которым строится сетка
type Source interface {
	// Size возвращает длину ребра региона в блоках
	Size() int
	// BlockAt возвращает блок по локальным координатам
	BlockAt(local vec.Vec3) block.BlockID
	// Neighbor возвращает блок за гранью face клетки local. Если соседняя
	// клетка лежит в несгенерированном регионе, known == false.
	Neighbor(local vec.Vec3, face Face) (id block.BlockID, known bool)
}

// Result - результат построения сетки
type Result struct {
	Vertices []Vertex
	Faces    int
}

// Empty возвращает true, если не добавлено ни одной грани
func (r Result) Empty() bool {
	return r.Faces == 0
}

// Builder строит сетку видимых граней региона
type Builder struct {
	table *block.Table
}

// NewBuilder создаёт построитель сетки для таблицы блоков
func NewBuilder(table *block.Table) *Builder {
	return &Builder{table: table}
}

// Build обходит все непустые клетки в порядке x, y, z и добавляет видимые
// грани. Грань куба видна, только если сосед известен и прозрачен: грани,
// обращённые к несгенерированным регионам, не рисуются.
func (b *Builder) Build(src Source) Result {
	var res Result
	size := src.Size()

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				local := vec.Vec3{X: x, Y: y, Z: z}
				id := src.BlockAt(local)
				if id == block.AirBlockID {
					continue
				}

				t := b.table.Get(id)
				pos := mgl32.Vec3{float32(x), float32(y), float32(z)}

				switch t.Shape {
				case block.ShapeCrossedPlanes:
					tile := t.Texture.TileFor(block.GroupSide)
					for _, face := range CrossFaces {
						res.Vertices = PushFace(res.Vertices, pos, face, tile, t.Variant)
						res.Faces++
					}
				default:
					for _, face := range CubeFaces {
						neighbor, known := src.Neighbor(local, face)
						if !known || !b.table.IsTransparent(neighbor) {
							continue
						}
						res.Vertices = PushFace(res.Vertices, pos, face, t.Texture.TileFor(face.Group()), t.Variant)
						res.Faces++
					}
				}
			}
		}
	}

	return res
}
