package block

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile - формат YAML-описания таблицы блоков
type tableFile struct {
	Blocks []blockEntry `yaml:"blocks"`
}

type blockEntry struct {
	ID          BlockID      `yaml:"id"`
	Name        string       `yaml:"name"`
	Transparent bool         `yaml:"transparent"`
	Shape       string       `yaml:"shape"`
	Variant     int32        `yaml:"variant"`
	Texture     textureEntry `yaml:"texture"`
}

type textureEntry struct {
	Kind   string     `yaml:"kind"`
	Top    [2]float32 `yaml:"top"`
	Side   [2]float32 `yaml:"side"`
	Bottom [2]float32 `yaml:"bottom"`
}

// LoadTable читает таблицу блоков из YAML
func LoadTable(r io.Reader) (*Table, error) {
	var file tableFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("ошибка разбора таблицы блоков: %w", err)
	}

	builder := NewTableBuilder()
	for _, e := range file.Blocks {
		t, err := e.toType()
		if err != nil {
			return nil, fmt.Errorf("блок %d (%s): %w", e.ID, e.Name, err)
		}
		builder.Register(e.ID, t)
	}
	return builder.Build()
}

// LoadTableFile читает таблицу блоков из файла
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия таблицы блоков: %w", err)
	}
	defer f.Close()

	return LoadTable(f)
}

func (e blockEntry) toType() (Type, error) {
	t := Type{
		Name:        e.Name,
		Transparent: e.Transparent,
		Variant:     RenderVariant(e.Variant),
	}

	switch e.Shape {
	case "", "cube":
		t.Shape = ShapeCube
	case "crossed_planes":
		t.Shape = ShapeCrossedPlanes
	default:
		return Type{}, fmt.Errorf("неизвестная форма %q", e.Shape)
	}

	top := Tile{U: e.Texture.Top[0], V: e.Texture.Top[1]}
	side := Tile{U: e.Texture.Side[0], V: e.Texture.Side[1]}
	bottom := Tile{U: e.Texture.Bottom[0], V: e.Texture.Bottom[1]}

	switch e.Texture.Kind {
	case "", "uniform":
		t.Texture = Uniform(top.U, top.V)
	case "top_side":
		t.Texture = TopSide(top, side)
	case "top_side_bottom":
		t.Texture = TopSideBottom(top, side, bottom)
	default:
		return Type{}, fmt.Errorf("неизвестный тип текстуры %q", e.Texture.Kind)
	}

	return t, nil
}
