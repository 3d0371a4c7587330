package world

import (
	"math/rand"
	"testing"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/physics"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(radius int) config.WorldConfig {
	cfg := config.Default().World
	cfg.Seed = 42
	cfg.Radius = radius
	cfg.MinRegionY = 0
	cfg.MaxRegionY = 1
	return cfg
}

func newTestWorld(t *testing.T, cfg config.WorldConfig, opts ...Option) (*World, *mesh.MemoryUploader) {
	t.Helper()
	up := mesh.NewMemoryUploader()
	return New(cfg, block.DefaultTable(), up, opts...), up
}

func filledBlocks(id block.BlockID) *Blocks {
	var b Blocks
	for x := range b {
		for y := range b[x] {
			for z := range b[x][y] {
				b[x][y][z] = id
			}
		}
	}
	return &b
}

func TestEmptyWorldReadsAir(t *testing.T) {
	w, up := newTestWorld(t, testConfig(0))

	assert.Empty(t, w.Regions())
	assert.Empty(t, w.Renderables())
	assert.Equal(t, 0, up.Live())

	for _, pos := range []vec.Vec3{{}, {X: -1, Y: -1, Z: -1}, {X: 100, Y: 5, Z: -300}} {
		assert.Equal(t, block.AirBlockID, w.Block(pos))
		assert.False(t, w.IsSolid(pos))
	}

	// Запись в несгенерированный регион ничего не делает и ничего не откладывает
	assert.False(t, w.SetBlock(vec.Vec3{X: 3, Y: 3, Z: 3}, block.StoneBlockID))
	assert.False(t, w.ClearBlock(vec.Vec3{X: 3, Y: 3, Z: 3}))
	assert.Empty(t, w.Regions())
	assert.Empty(t, w.PendingRegions())
}

func TestSetBlockRoundTrip(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(0))
	w.LoadRegion(vec.Vec3{}, &Blocks{})
	w.LoadRegion(vec.Vec3{X: -1, Y: -1, Z: -1}, &Blocks{})

	positions := []vec.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 15, Y: 15, Z: 15},
		{X: -1, Y: -1, Z: -1},
		{X: -16, Y: -16, Z: -16},
		{X: -7, Y: -12, Z: -3},
	}
	for i, pos := range positions {
		id := block.BlockID(i + 1)
		require.True(t, w.SetBlock(pos, id))
		assert.Equal(t, id, w.Block(pos), "позиция %v", pos)
		assert.True(t, w.IsSolid(pos))
	}

	r, ok := w.Region(vec.Vec3{X: -1, Y: -1, Z: -1})
	require.True(t, ok)
	assert.Equal(t, block.BlockID(3), r.Get(vec.Vec3{X: 15, Y: 15, Z: 15}))

	require.True(t, w.ClearBlock(positions[0]))
	assert.Equal(t, block.AirBlockID, w.Block(positions[0]))
}

func TestEnclosedRegionHasEmptyMesh(t *testing.T) {
	w, up := newTestWorld(t, testConfig(0))

	// Одиночный каменный регион: все грани смотрят в несгенерированные регионы
	lone := w.LoadRegion(vec.Vec3{X: 10}, filledBlocks(block.StoneBlockID))
	assert.False(t, lone.HasMesh())

	for _, face := range mesh.CubeFaces {
		w.LoadRegion(face.Offset(), filledBlocks(block.StoneBlockID))
	}
	center := w.LoadRegion(vec.Vec3{}, filledBlocks(block.StoneBlockID))

	assert.False(t, center.HasMesh())
	assert.Nil(t, center.Surface())
	assert.True(t, w.RebuildMesh(vec.Vec3{}))
	assert.False(t, center.HasMesh())
	assert.Equal(t, 0, up.Live())
	assert.Empty(t, w.Renderables())
}

func TestBoundaryEditRebuildsNeighbor(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(0))
	west := w.LoadRegion(vec.Vec3{X: -1}, filledBlocks(block.StoneBlockID))
	center := w.LoadRegion(vec.Vec3{}, filledBlocks(block.StoneBlockID))
	require.False(t, west.HasMesh())
	require.False(t, center.HasMesh())

	before := west.MeshRebuilds()

	// Внутренняя клетка: сосед не трогается
	require.True(t, w.ClearBlock(vec.Vec3{X: 5, Y: 5, Z: 5}))
	assert.Equal(t, before, west.MeshRebuilds())

	// Клетка на грани x = 0: перестраивается и западный сосед
	require.True(t, w.ClearBlock(vec.Vec3{X: 0, Y: 5, Z: 5}))
	assert.Equal(t, before+1, west.MeshRebuilds())

	require.True(t, west.HasMesh())
	assert.Equal(t, 1, west.Surface().Faces, "открылась грань +X блока (15,5,5)")

	require.True(t, center.HasMesh())
	assert.Equal(t, 6+5, center.Surface().Faces)

	// Грань z = 0 смотрит в несгенерированный регион: без паники и без очереди
	assert.NotPanics(t, func() {
		require.True(t, w.ClearBlock(vec.Vec3{X: 8, Y: 8, Z: 0}))
	})
	assert.Empty(t, w.PendingRegions())
	assert.Equal(t, before+1, west.MeshRebuilds())
}

func TestCanopyQueuedAndAppliedInOrder(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(0))

	// Регион y = 2 (мировые y 32..47) целиком выше поверхности
	home := vec.Vec3{Y: 2}
	east := vec.Vec3{X: 1, Y: 2}
	w.LoadRegion(home, &Blocks{})

	root := vec.Vec3{X: 15, Y: 34, Z: 8}
	w.foliage.PlaceTree(root)

	// Ствол и крона внутри существующего региона записаны сразу
	assert.Equal(t, block.LogBlockID, w.Block(root))
	assert.Equal(t, block.LogBlockID, w.Block(root.Add(vec.Vec3{Y: 3})))
	assert.Equal(t, block.LeavesBlockID, w.Block(root.Add(vec.Vec3{Y: 4})), "крона перекрывает верх ствола")

	require.Equal(t, []vec.Vec3{east}, w.PendingRegions())
	edits := w.PendingEdits(east)
	want := []vec.Vec3{
		{X: 0, Y: 5, Z: 7}, {X: 0, Y: 6, Z: 7},
		{X: 0, Y: 5, Z: 8}, {X: 0, Y: 6, Z: 8}, {X: 0, Y: 7, Z: 8},
		{X: 0, Y: 5, Z: 9}, {X: 0, Y: 6, Z: 9},
	}
	require.Len(t, edits, len(want))
	for i, e := range edits {
		assert.Equal(t, want[i], e.Local)
		assert.Equal(t, block.LeavesBlockID, e.ID)
	}

	// Повторная запись в ту же клетку перекрывает предыдущую
	w.PlaceGenerated(vec.Vec3{X: 16, Y: 37, Z: 7}, block.RoseBlockID)

	r := w.GenerateRegion(east)
	require.NotNil(t, r)
	assert.Empty(t, w.PendingRegions())
	assert.Equal(t, block.RoseBlockID, w.Block(vec.Vec3{X: 16, Y: 37, Z: 7}))
	assert.Equal(t, block.LeavesBlockID, w.Block(vec.Vec3{X: 16, Y: 39, Z: 8}))
	assert.Equal(t, block.AirBlockID, w.Block(vec.Vec3{X: 16, Y: 39, Z: 7}), "угол верхнего яруса пропущен")
	assert.Equal(t, 7, r.CountSolid())
}

func TestGenerateRegionRefreshesNeighbors(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(0))
	west := w.LoadRegion(vec.Vec3{X: -1, Y: 5}, filledBlocks(block.StoneBlockID))
	require.False(t, west.HasMesh())
	before := west.MeshRebuilds()

	// Регион над поверхностью пуст, поэтому у западного соседа открывается грань +X
	r := w.GenerateRegion(vec.Vec3{Y: 5})
	assert.Equal(t, 0, r.CountSolid())
	assert.Equal(t, before+1, west.MeshRebuilds())
	require.True(t, west.HasMesh())
	assert.Equal(t, RegionSize*RegionSize, west.Surface().Faces)

	// Повторный вызов возвращает тот же регион без перестроения
	again := w.GenerateRegion(vec.Vec3{Y: 5})
	assert.Same(t, r, again)
	assert.Equal(t, before+1, west.MeshRebuilds())
}

func TestMeshRebuildIdempotent(t *testing.T) {
	w, up := newTestWorld(t, testConfig(1))
	require.Len(t, w.Regions(), 4)

	for _, c := range w.Regions() {
		r, _ := w.Region(c)
		require.True(t, w.RebuildMesh(c))
		first := r.Surface()
		require.True(t, w.RebuildMesh(c))
		second := r.Surface()

		if first == nil {
			assert.Nil(t, second)
			continue
		}
		require.NotNil(t, second)
		assert.Equal(t, first.Faces, second.Faces)
		assert.Equal(t, first.Vertices, second.Vertices)
	}

	assert.False(t, w.RebuildMesh(vec.Vec3{X: 99}))
	// Старые буферы освобождаются при перестроении
	assert.Equal(t, len(w.Renderables()), up.Live())
}

func TestInitialVolume(t *testing.T) {
	cfg := testConfig(1)
	cfg.MinRegionY = -1
	w, _ := newTestWorld(t, cfg)

	coords := w.Regions()
	require.Len(t, coords, 2*2*2)
	assert.Equal(t, vec.Vec3{X: -1, Y: -1, Z: -1}, coords[0])
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 0}, coords[len(coords)-1])

	// Очереди остались только у несгенерированных регионов
	for _, c := range w.PendingRegions() {
		_, ok := w.Region(c)
		assert.False(t, ok, "регион %v сгенерирован, но его очередь не применена", c)
	}

	// Каждый регион построен ровно один раз
	for _, c := range coords {
		r, _ := w.Region(c)
		assert.Equal(t, 1, r.MeshRebuilds())
	}

	// Регионы y = -1 полностью под поверхностью и содержат камень
	r, _ := w.Region(vec.Vec3{Y: -1})
	assert.Greater(t, r.CountSolid(), RegionSize*RegionSize*RegionSize/2)

	for _, rd := range w.Renderables() {
		reg, _ := w.Region(rd.Coords)
		assert.Equal(t, reg.Transform(), rd.Transform)
		assert.Equal(t, reg.Surface().Handle, rd.Handle)
	}
}

func TestCarvedCellsOnlyHoldDecorations(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(2))

	decorations := map[block.BlockID]bool{
		block.AirBlockID:       true,
		block.TallGrassBlockID: true,
		block.FernBlockID:      true,
		block.RoseBlockID:      true,
		block.DandelionBlockID: true,
		block.LogBlockID:       true,
		block.LeavesBlockID:    true,
	}

	for _, c := range w.Regions() {
		r, _ := w.Region(c)
		origin := r.Origin()
		for x := 0; x < RegionSize; x++ {
			for y := 0; y < RegionSize; y++ {
				for z := 0; z < RegionSize; z++ {
					local := vec.Vec3{X: x, Y: y, Z: z}
					if !w.caves.IsCave(origin.Add(local)) {
						continue
					}
					id := r.Get(local)
					assert.True(t, decorations[id], "клетка пещеры %v содержит блок %d", origin.Add(local), id)
				}
			}
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	a, _ := newTestWorld(t, testConfig(0))
	b, _ := newTestWorld(t, testConfig(0))

	ra := a.GenerateRegion(vec.Vec3{})
	rb := b.GenerateRegion(vec.Vec3{})
	assert.Equal(t, ra.Blocks(), rb.Blocks())
	assert.Equal(t, a.NoiseOffset(), b.NoiseOffset())
	assert.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, ra.HasMesh(), rb.HasMesh())
	if ra.HasMesh() {
		assert.Equal(t, ra.Surface().Faces, rb.Surface().Faces)
	}

	// Фиксированный поток случайных чисел
	c, _ := newTestWorld(t, testConfig(0), WithRandSource(rand.NewSource(7)))
	d, _ := newTestWorld(t, testConfig(0), WithRandSource(rand.NewSource(7)))
	assert.Equal(t, c.GenerateRegion(vec.Vec3{}).Blocks(), d.GenerateRegion(vec.Vec3{}).Blocks())

	// Начальный объём тоже воспроизводим
	e, _ := newTestWorld(t, testConfig(1))
	f, _ := newTestWorld(t, testConfig(1))
	require.Equal(t, e.Regions(), f.Regions())
	for _, coords := range e.Regions() {
		re, _ := e.Region(coords)
		rf, _ := f.Region(coords)
		assert.Equal(t, re.Blocks(), rf.Blocks(), "регион %v", coords)
	}
	assert.Equal(t, e.PendingRegions(), f.PendingRegions())

	other := testConfig(0)
	other.Seed = 43
	g, _ := newTestWorld(t, other)
	assert.NotEqual(t, ra.Blocks(), g.GenerateRegion(vec.Vec3{}).Blocks())
}

func TestExplicitNoiseOffset(t *testing.T) {
	cfg := testConfig(0)
	cfg.NoiseOffset = &[2]float64{1.5, -2.5}
	w, _ := newTestWorld(t, cfg)
	assert.Equal(t, [2]float64{1.5, -2.5}, w.NoiseOffset())
	assert.Equal(t, int64(42), w.Seed())

	derived, _ := newTestWorld(t, testConfig(0))
	off := derived.NoiseOffset()
	for _, v := range off {
		assert.GreaterOrEqual(t, v, float64(noiseOffsetBase))
		assert.Less(t, v, float64(noiseOffsetBase+noiseOffsetRange))
	}
}

func TestFindSpawn(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(0))

	var ground Blocks
	for x := 0; x < RegionSize; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < RegionSize; z++ {
				ground[x][y][z] = block.StoneBlockID
			}
		}
	}
	w.LoadRegion(vec.Vec3{}, &ground)
	w.LoadRegion(vec.Vec3{X: 1}, filledBlocks(block.StoneBlockID))

	player := physics.NewBoxCollider(1, 2, 1)
	pos, ok := w.FindSpawn(3, 3, player)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 3, Y: 5, Z: 3}, pos)
	assert.True(t, physics.CanMoveToPosition(pos, player, w))

	_, ok = w.FindSpawn(40, 40, player)
	assert.False(t, ok, "столбец без регионов")

	_, ok = w.FindSpawn(20, 3, player)
	assert.False(t, ok, "столбец целиком из камня")
}
