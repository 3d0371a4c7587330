package world

import (
	"sort"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// PendingEdit - отложенная запись блока в ещё не сгенерированный регион
type PendingEdit struct {
	Local vec.Vec3
	ID    block.BlockID
}

// PendingEdits - очередь отложенных изменений по координатам регионов.
// Запись для региона забирается ровно один раз, в момент его генерации.
type PendingEdits struct {
	entries map[vec.Vec3][]PendingEdit
	total   int
}

// NewPendingEdits создаёт пустую очередь
func NewPendingEdits() *PendingEdits {
	return &PendingEdits{entries: make(map[vec.Vec3][]PendingEdit)}
}

// Push добавляет изменение в конец очереди региона
func (p *PendingEdits) Push(region, local vec.Vec3, id block.BlockID) {
	p.entries[region] = append(p.entries[region], PendingEdit{Local: local, ID: id})
	p.total++
}

// Take забирает и удаляет очередь региона. Порядок изменений сохраняется.
func (p *PendingEdits) Take(region vec.Vec3) ([]PendingEdit, bool) {
	edits, ok := p.entries[region]
	if !ok {
		return nil, false
	}
	delete(p.entries, region)
	p.total -= len(edits)
	return edits, true
}

// Peek возвращает копию очереди региона без удаления
func (p *PendingEdits) Peek(region vec.Vec3) []PendingEdit {
	edits := p.entries[region]
	if len(edits) == 0 {
		return nil
	}
	out := make([]PendingEdit, len(edits))
	copy(out, edits)
	return out
}

// Has проверяет, есть ли отложенные изменения для региона
func (p *PendingEdits) Has(region vec.Vec3) bool {
	_, ok := p.entries[region]
	return ok
}

// Len возвращает количество регионов с отложенными изменениями
func (p *PendingEdits) Len() int {
	return len(p.entries)
}

// Total возвращает общее количество отложенных изменений
func (p *PendingEdits) Total() int {
	return p.total
}

// Coords возвращает координаты регионов с очередями в порядке x, y, z
func (p *PendingEdits) Coords() []vec.Vec3 {
	coords := make([]vec.Vec3, 0, len(p.entries))
	for c := range p.entries {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}
