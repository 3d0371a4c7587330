package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/metrics"
	"github.com/annel0/voxel-world/internal/util"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/mesh"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Смещение поля шума, если оно не задано в конфигурации: 1e6*u + noiseOffsetBase
const (
	noiseOffsetRange = 1e6
	noiseOffsetBase  = 3141592
)

// World владеет регионами, очередью отложенных изменений и сетками.
// Не потокобезопасен: все вызовы должны идти из одной горутины.
type World struct {
	id    uuid.UUID
	cfg   config.WorldConfig
	table *block.Table

	store   *RegionStore
	pending *PendingEdits

	noise   *util.Noise
	offset  [2]float64
	terrain *TerrainGenerator
	caves   *CaveCarver
	foliage *FoliagePlacer
	rand    func(coords vec.Vec3) *rand.Rand

	mesher   *mesh.Builder
	uploader mesh.Uploader

	// Регионы, в которые генератор записал блоки напрямую; их сетки устарели
	dirty map[vec.Vec3]struct{}

	metrics *metrics.World
	log     *logging.Logger
	genLog  *logging.Logger
	meshLog *logging.Logger
}

// Option настраивает World при создании
type Option func(*World)

// WithMetrics подключает внешние метрики
func WithMetrics(m *metrics.World) Option {
	return func(w *World) { w.metrics = m }
}

// WithLogger задаёт один логгер для всех компонентов мира
func WithLogger(l *logging.Logger) Option {
	return func(w *World) {
		w.log = l
		w.genLog = l
		w.meshLog = l
	}
}

// WithRandSource заменяет генератор случайных чисел для декораций.
// Один и тот же источник используется для всех регионов по порядку генерации.
func WithRandSource(src rand.Source) Option {
	return func(w *World) {
		rng := rand.New(src)
		w.rand = func(vec.Vec3) *rand.Rand { return rng }
	}
}

// New создаёт мир и генерирует начальный объём регионов:
// x и z в [-Radius, Radius), y в [MinRegionY, MaxRegionY).
// Сетки строятся одним проходом после генерации всех регионов.
func New(cfg config.WorldConfig, table *block.Table, uploader mesh.Uploader, opts ...Option) *World {
	w := &World{
		id:       uuid.New(),
		cfg:      cfg,
		table:    table,
		store:    NewRegionStore(),
		pending:  NewPendingEdits(),
		noise:    util.NewNoise(cfg.Seed),
		mesher:   mesh.NewBuilder(table),
		uploader: uploader,
		dirty:    make(map[vec.Vec3]struct{}),
	}
	w.rand = func(c vec.Vec3) *rand.Rand {
		return util.NewRegionStream(cfg.Seed, c.X, c.Y, c.Z)
	}

	for _, opt := range opts {
		opt(w)
	}
	if w.metrics == nil {
		w.metrics = metrics.NewWorld(nil)
	}
	if w.log == nil {
		w.log = logging.GetWorldLogger()
		w.genLog = logging.GetGenLogger()
		w.meshLog = logging.GetMeshLogger()
	}

	if cfg.NoiseOffset != nil {
		w.offset = *cfg.NoiseOffset
	} else {
		r := util.NewStream(cfg.Seed, util.StreamOffset)
		w.offset = [2]float64{
			noiseOffsetRange*r.Float64() + noiseOffsetBase,
			noiseOffsetRange*r.Float64() + noiseOffsetBase,
		}
	}

	w.terrain = NewTerrainGenerator(w.noise, cfg.SurfaceScale, cfg.SurfaceAmplitude, cfg.SurfaceBias, w.offset)
	w.caves = NewCaveCarver(w.noise, cfg.CaveScale, cfg.CaveCutoff)
	w.foliage = NewFoliagePlacer(w)

	w.generateInitialVolume()
	return w
}

func (w *World) generateInitialVolume() {
	start := time.Now()
	r := w.cfg.Radius
	for x := -r; x < r; x++ {
		for y := w.cfg.MinRegionY; y < w.cfg.MaxRegionY; y++ {
			for z := -r; z < r; z++ {
				w.generate(vec.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	genTime := time.Since(start)

	// Все регионы перестраиваются ниже, поэтому список грязных не нужен
	w.dirty = make(map[vec.Vec3]struct{})
	w.store.Each(w.rebuildMesh)
	w.checkPending()

	w.log.Info("Мир %s (сид %d): %d регионов сгенерировано за %v, сетки построены за %v, отложено изменений: %d в %d регионах",
		w.id, w.cfg.Seed, w.store.Len(), genTime, time.Since(start)-genTime, w.pending.Total(), w.pending.Len())
}

// generate создаёт регион: рельеф, пещеры, вставка в хранилище, применение очереди.
// Декорации самого региона попадают в очередь, так как он ещё не вставлен,
// и поэтому применяются после вырезания пещер.
func (w *World) generate(coords vec.Vec3) *Region {
	r := NewRegion(coords)
	rng := w.rand(coords)

	w.terrain.Generate(r, rng, func(above vec.Vec3) {
		w.foliage.Decorate(above, rng)
	})
	carved := w.caves.Carve(r)

	applied := w.commitRegion(r)
	w.metrics.RegionsGenerated.Inc()
	w.genLog.Debug("Регион %v сгенерирован: вырезано %d блоков, применено %d отложенных изменений",
		coords, carved, applied)
	return r
}

// commitRegion вставляет регион и применяет его очередь отложенных изменений.
// Это единственный путь добавления региона в хранилище.
func (w *World) commitRegion(r *Region) int {
	w.store.Insert(r)
	edits, ok := w.pending.Take(r.Coords)
	if !ok {
		return 0
	}
	for _, e := range edits {
		r.Set(e.Local, e.ID)
	}
	w.metrics.EditsApplied.Add(float64(len(edits)))
	w.metrics.PendingRegions.Set(float64(w.pending.Len()))
	return len(edits)
}

// checkPending проверяет, что ни у одного существующего региона не осталось очереди
func (w *World) checkPending() {
	for _, c := range w.pending.Coords() {
		if w.store.Has(c) {
			panic(fmt.Sprintf("world: очередь региона %v не применена после генерации", c))
		}
	}
}

// PlaceGenerated записывает блок, поставленный генератором. Если регион уже
// существует, запись прямая, иначе изменение откладывается до генерации региона.
func (w *World) PlaceGenerated(pos vec.Vec3, id block.BlockID) {
	coords, local := pos.SplitRegion(RegionSize)
	if r, ok := w.store.Get(coords); ok {
		r.Set(local, id)
		w.dirty[coords] = struct{}{}
		return
	}
	w.pending.Push(coords, local, id)
	w.metrics.EditsQueued.Inc()
	w.metrics.PendingRegions.Set(float64(w.pending.Len()))
}

// GenerateRegion генерирует один регион после создания мира. Перестраиваются
// сетки нового региона, его существующих соседей и регионов, в которые
// генератор записал блоки напрямую. Для существующего региона ничего не делает.
func (w *World) GenerateRegion(coords vec.Vec3) *Region {
	if r, ok := w.store.Get(coords); ok {
		return r
	}
	r := w.generate(coords)
	w.refreshAround(coords)
	w.checkPending()
	return r
}

// LoadRegion вставляет готовый регион (например, загруженный извне),
// применяет его очередь и перестраивает сетки его и соседей.
// Существующий регион с теми же координатами заменяется.
func (w *World) LoadRegion(coords vec.Vec3, blocks *Blocks) *Region {
	if old, ok := w.store.Get(coords); ok {
		w.releaseSurface(old)
	}
	r := NewRegionFromBlocks(coords, blocks)
	applied := w.commitRegion(r)
	w.log.Debug("Регион %v загружен, применено %d отложенных изменений", coords, applied)
	w.refreshAround(coords)
	return r
}

// refreshAround перестраивает сетку региона, его соседей по граням и грязных регионов
func (w *World) refreshAround(coords vec.Vec3) {
	affected := map[vec.Vec3]struct{}{coords: {}}
	for _, face := range mesh.CubeFaces {
		affected[coords.Add(face.Offset())] = struct{}{}
	}
	for c := range w.dirty {
		affected[c] = struct{}{}
	}
	w.dirty = make(map[vec.Vec3]struct{})

	for _, c := range w.store.Coords() {
		if _, ok := affected[c]; ok {
			w.RebuildMesh(c)
		}
	}
}

// SetBlock записывает блок в глобальной позиции и перестраивает сетку региона.
// Если клетка лежит на грани региона, перестраивается и соседний регион за
// этой гранью. Запись в несгенерированный регион игнорируется; возвращает false.
func (w *World) SetBlock(pos vec.Vec3, id block.BlockID) bool {
	coords, local := pos.SplitRegion(RegionSize)
	r, ok := w.store.Get(coords)
	if !ok {
		return false
	}
	r.Set(local, id)
	w.rebuildMesh(r)

	for _, face := range mesh.CubeFaces {
		l := local.Axis(face.Axis())
		onFace := (face.Positive() && l == RegionSize-1) || (!face.Positive() && l == 0)
		if !onFace {
			continue
		}
		if n, ok := w.store.Get(coords.Add(face.Offset())); ok {
			w.rebuildMesh(n)
		}
	}
	return true
}

// ClearBlock ставит воздух в глобальной позиции
func (w *World) ClearBlock(pos vec.Vec3) bool {
	return w.SetBlock(pos, block.AirBlockID)
}

// Block возвращает блок в глобальной позиции; для несгенерированного региона - воздух
func (w *World) Block(pos vec.Vec3) block.BlockID {
	coords, local := pos.SplitRegion(RegionSize)
	r, ok := w.store.Get(coords)
	if !ok {
		return block.AirBlockID
	}
	return r.Get(local)
}

// IsSolid возвращает true, если в позиции не воздух
func (w *World) IsSolid(pos vec.Vec3) bool {
	return w.Block(pos) != block.AirBlockID
}

// RebuildMesh перестраивает сетку региона. Возвращает false, если региона нет.
func (w *World) RebuildMesh(coords vec.Vec3) bool {
	r, ok := w.store.Get(coords)
	if !ok {
		return false
	}
	w.rebuildMesh(r)
	return true
}

func (w *World) rebuildMesh(r *Region) {
	res := w.mesher.Build(regionSource{world: w, region: r})
	w.releaseSurface(r)
	if !res.Empty() {
		r.surface = &mesh.Surface{
			Handle:   w.uploader.Upload(res.Vertices),
			Vertices: res.Vertices,
			Faces:    res.Faces,
		}
	}
	r.rebuilds++
	w.metrics.MeshRebuilds.Inc()
	w.metrics.FacesEmitted.Add(float64(res.Faces))
	w.meshLog.Trace("Сетка региона %v: %d граней", r.Coords, res.Faces)
}

func (w *World) releaseSurface(r *Region) {
	if r.surface != nil {
		w.uploader.Release(r.surface.Handle)
		r.surface = nil
	}
}

// Region возвращает регион по координатам
func (w *World) Region(coords vec.Vec3) (*Region, bool) {
	return w.store.Get(coords)
}

// Regions возвращает координаты всех регионов в порядке x, y, z
func (w *World) Regions() []vec.Vec3 {
	return w.store.Coords()
}

// Renderable - регион с сеткой, готовый к отрисовке
type Renderable struct {
	Coords    vec.Vec3
	Handle    mesh.Handle
	Transform mgl32.Mat4
	Faces     int
}

// Renderables возвращает все регионы с непустой сеткой в порядке x, y, z
func (w *World) Renderables() []Renderable {
	var out []Renderable
	w.store.Each(func(r *Region) {
		if r.surface == nil {
			return
		}
		out = append(out, Renderable{
			Coords:    r.Coords,
			Handle:    r.surface.Handle,
			Transform: r.transform,
			Faces:     r.surface.Faces,
		})
	})
	return out
}

// PendingRegions возвращает координаты несгенерированных регионов с отложенными изменениями
func (w *World) PendingRegions() []vec.Vec3 {
	return w.pending.Coords()
}

// PendingEdits возвращает копию очереди несгенерированного региона
func (w *World) PendingEdits(coords vec.Vec3) []PendingEdit {
	return w.pending.Peek(coords)
}

// Seed возвращает сид мира
func (w *World) Seed() int64 {
	return w.cfg.Seed
}

// NoiseOffset возвращает смещение поля шума
func (w *World) NoiseOffset() [2]float64 {
	return w.offset
}

// ID возвращает идентификатор экземпляра мира
func (w *World) ID() uuid.UUID {
	return w.id
}

// regionSource отдаёт построителю сетки блоки региона и его соседей
type regionSource struct {
	world  *World
	region *Region
}

func (s regionSource) Size() int {
	return RegionSize
}

func (s regionSource) BlockAt(local vec.Vec3) block.BlockID {
	return s.region.Get(local)
}

func (s regionSource) Neighbor(local vec.Vec3, face mesh.Face) (block.BlockID, bool) {
	n := local.Add(face.Offset())
	if InRegion(n) {
		return s.region.Get(n), true
	}
	other, ok := s.world.store.Get(s.region.Coords.Add(face.Offset()))
	if !ok {
		return block.AirBlockID, false
	}
	return other.Get(n.LocalInRegion(RegionSize)), true
}
