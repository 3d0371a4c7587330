package world

import (
	"sort"

	"github.com/annel0/voxel-world/internal/vec"
)

// RegionStore хранит все сгенерированные регионы. Чтение никогда не создаёт
// регион: отсутствующая координата означает "не сгенерирован", а не "пуст".
type RegionStore struct {
	regions map[vec.Vec3]*Region
}

// NewRegionStore создаёт пустое хранилище
func NewRegionStore() *RegionStore {
	return &RegionStore{regions: make(map[vec.Vec3]*Region)}
}

// Get возвращает регион по координатам. Указатель позволяет изменять регион.
func (s *RegionStore) Get(coords vec.Vec3) (*Region, bool) {
	r, ok := s.regions[coords]
	return r, ok
}

// Has проверяет наличие региона
func (s *RegionStore) Has(coords vec.Vec3) bool {
	_, ok := s.regions[coords]
	return ok
}

// Insert добавляет регион, заменяя существующий с теми же координатами
func (s *RegionStore) Insert(r *Region) {
	if r == nil {
		panic("world: попытка вставить nil-регион")
	}
	s.regions[r.Coords] = r
}

// Len возвращает количество регионов
func (s *RegionStore) Len() int {
	return len(s.regions)
}

// Coords возвращает координаты всех регионов в порядке x, y, z
func (s *RegionStore) Coords() []vec.Vec3 {
	coords := make([]vec.Vec3, 0, len(s.regions))
	for c := range s.regions {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

// Each вызывает fn для каждого региона в порядке Coords
func (s *RegionStore) Each(fn func(r *Region)) {
	for _, c := range s.Coords() {
		fn(s.regions[c])
	}
}
