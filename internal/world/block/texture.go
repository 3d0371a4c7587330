package block

// TextureKind определяет способ наложения текстуры на грани
type TextureKind uint8

const (
	TextureUniform       TextureKind = iota // одна текстура на все грани
	TextureTopSide                          // верх отдельно, низ как бока
	TextureTopSideBottom                    // верх, бока и низ различаются
)

// Tile - координаты плитки в атласе (в единицах плиток)
type Tile struct {
	U, V float32
}

// FaceGroup - группа граней с точки зрения текстуры
type FaceGroup uint8

const (
	GroupSide FaceGroup = iota
	GroupTop
	GroupBottom
)

// TextureMap описывает текстуры блока
type TextureMap struct {
	Kind   TextureKind
	Top    Tile
	Side   Tile
	Bottom Tile
}

// Uniform создаёт карту с одной текстурой на все грани
func Uniform(u, v float32) TextureMap {
	t := Tile{U: u, V: v}
	return TextureMap{Kind: TextureUniform, Top: t, Side: t, Bottom: t}
}

// TopSide создаёт карту "верх + бока"
func TopSide(top, side Tile) TextureMap {
	return TextureMap{Kind: TextureTopSide, Top: top, Side: side, Bottom: side}
}

// TopSideBottom создаёт карту с тремя текстурами
func TopSideBottom(top, side, bottom Tile) TextureMap {
	return TextureMap{Kind: TextureTopSideBottom, Top: top, Side: side, Bottom: bottom}
}

// TileFor возвращает плитку для группы граней
func (m TextureMap) TileFor(group FaceGroup) Tile {
	switch m.Kind {
	case TextureTopSide:
		if group == GroupTop {
			return m.Top
		}
		return m.Side
	case TextureTopSideBottom:
		switch group {
		case GroupTop:
			return m.Top
		case GroupBottom:
			return m.Bottom
		default:
			return m.Side
		}
	default:
		return m.Top
	}
}
