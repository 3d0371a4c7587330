package block

import "fmt"

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID         BlockID = iota // 0 - пустота, никогда не рисуется
	StoneBlockID                      // 1
	GrassBlockID                      // 2
	DirtBlockID                       // 3
	CobblestoneBlockID                // 4
	PlanksBlockID                     // 5
	GlassBlockID                      // 6
	RoseBlockID                       // 7
	SandBlockID                       // 8
	LogBlockID                        // 9
	DandelionBlockID                  // 10
	LeavesBlockID                     // 11
	TallGrassBlockID                  // 12
	FernBlockID                       // 13
	DiamondOreBlockID                 // 14 - редкая руда
	CoalOreBlockID                    // 15 - руда попроще
)

// MeshShape определяет форму сетки блока
type MeshShape uint8

const (
	ShapeCube          MeshShape = iota // Полный куб
	ShapeCrossedPlanes                  // Две скрещённые плоскости (трава, цветы)
)

// String возвращает строковое представление формы
func (s MeshShape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeCrossedPlanes:
		return "crossed_planes"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// RenderVariant передаётся в вершины без изменений, шейдер выбирает по нему ветку
type RenderVariant int32

const (
	VariantOpaque RenderVariant = iota
	VariantCutout
	VariantFoliage
	VariantTranslucent
)

// Type описывает тип блока. Таблица типов неизменяема после создания.
type Type struct {
	Name        string
	Transparent bool // пропускает видимость: грани соседей не отсекаются
	Shape       MeshShape
	Texture     TextureMap
	Variant     RenderVariant
}

// unknownType возвращается для ID, которых нет в таблице.
// Непрозрачный куб не создаёт лишних граней у соседей.
var unknownType = Type{Name: "unknown", Shape: ShapeCube}

// Table - неизменяемая таблица типов блоков, индексируемая по ID
type Table struct {
	types   []Type
	defined []bool
}

// TableBuilder собирает таблицу типов блоков
type TableBuilder struct {
	types map[BlockID]Type
	err   error
}

// NewTableBuilder создаёт пустой сборщик таблицы
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{types: make(map[BlockID]Type)}
}

// Register добавляет тип блока в таблицу. Повторная регистрация ID - ошибка.
func (b *TableBuilder) Register(id BlockID, t Type) *TableBuilder {
	if b.err != nil {
		return b
	}
	if _, exists := b.types[id]; exists {
		b.err = fmt.Errorf("блок %d зарегистрирован повторно", id)
		return b
	}
	if t.Shape > ShapeCrossedPlanes {
		b.err = fmt.Errorf("блок %d (%s): неизвестная форма %s", id, t.Name, t.Shape)
		return b
	}
	b.types[id] = t
	return b
}

// Build создаёт неизменяемую таблицу
func (b *TableBuilder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}

	air, ok := b.types[AirBlockID]
	if !ok {
		air = Type{Name: "air", Transparent: true}
	}
	if !air.Transparent {
		return nil, fmt.Errorf("блок воздуха (0) должен быть прозрачным")
	}
	b.types[AirBlockID] = air

	var maxID BlockID
	for id := range b.types {
		if id > maxID {
			maxID = id
		}
	}

	table := &Table{
		types:   make([]Type, int(maxID)+1),
		defined: make([]bool, int(maxID)+1),
	}
	for id, t := range b.types {
		table.types[id] = t
		table.defined[id] = true
	}
	return table, nil
}

// Get возвращает тип блока. Для неизвестного ID возвращается непрозрачный куб.
func (t *Table) Get(id BlockID) Type {
	if int(id) >= len(t.types) || !t.defined[id] {
		return unknownType
	}
	return t.types[id]
}

// Has проверяет, является ли ID допустимым идентификатором блока
func (t *Table) Has(id BlockID) bool {
	return int(id) < len(t.types) && t.defined[id]
}

// IsTransparent возвращает прозрачность блока
func (t *Table) IsTransparent(id BlockID) bool {
	return t.Get(id).Transparent
}

// Len возвращает количество зарегистрированных типов
func (t *Table) Len() int {
	n := 0
	for _, ok := range t.defined {
		if ok {
			n++
		}
	}
	return n
}
