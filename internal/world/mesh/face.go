package mesh

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/go-gl/mathgl/mgl32"
)

// Face - номер квадрата, который может быть добавлен для блока.
// 0..5 - грани куба, 6..9 - скрещённые плоскости.
type Face uint8

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ

	FaceCrossA
	FaceCrossABack
	FaceCrossB
	FaceCrossBBack

	faceCount
)

// CubeFaces - шесть граней куба в порядке обхода при построении сетки
var CubeFaces = [6]Face{FacePosX, FaceNegX, FacePosY, FaceNegY, FacePosZ, FaceNegZ}

// CrossFaces - четыре квадрата креста (две двусторонние плоскости)
var CrossFaces = [4]Face{FaceCrossA, FaceCrossABack, FaceCrossB, FaceCrossBBack}

// IsCube возвращает true для граней куба
func (f Face) IsCube() bool {
	return f <= FaceNegZ
}

// Axis возвращает ось нормали грани куба (0 - X, 1 - Y, 2 - Z)
func (f Face) Axis() int {
	return int(f) / 2
}

// Positive возвращает true, если нормаль направлена в сторону роста координаты
func (f Face) Positive() bool {
	return f%2 == 0
}

// Offset возвращает смещение к соседней клетке за гранью куба
func (f Face) Offset() vec.Vec3 {
	if !f.IsCube() {
		return vec.Zero
	}
	d := -1
	if f.Positive() {
		d = 1
	}
	return vec.Zero.WithAxis(f.Axis(), d)
}

// Group возвращает группу граней для выбора текстуры
func (f Face) Group() block.FaceGroup {
	switch f {
	case FacePosY:
		return block.GroupTop
	case FaceNegY:
		return block.GroupBottom
	default:
		return block.GroupSide
	}
}

// Углы квадратов относительно минимального угла блока, против часовой
// стрелки при взгляде снаружи
var faceCorners = [faceCount][4]mgl32.Vec3{
	FacePosX: {{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	FaceNegX: {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	FacePosY: {{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	FaceNegY: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	FacePosZ: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	FaceNegZ: {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},

	FaceCrossA:     {{0, 0, 0}, {1, 0, 1}, {1, 1, 1}, {0, 1, 0}},
	FaceCrossABack: {{1, 0, 1}, {0, 0, 0}, {0, 1, 0}, {1, 1, 1}},
	FaceCrossB:     {{0, 0, 1}, {1, 0, 0}, {1, 1, 0}, {0, 1, 1}},
	FaceCrossBBack: {{1, 0, 0}, {0, 0, 1}, {0, 1, 1}, {1, 1, 0}},
}

// UV-углы плитки в том же порядке, что и faceCorners
var cornerUV = [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Два треугольника на квадрат
var quadIndices = [6]int{0, 1, 2, 0, 2, 3}

// VerticesPerFace - количество вершин, добавляемых на один квадрат
const VerticesPerFace = len(quadIndices)
