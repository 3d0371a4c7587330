package block

// DefaultTable собирает встроенную таблицу блоков. Координаты плиток
// соответствуют стандартному атласу 16x16.
func DefaultTable() *Table {
	t, err := NewTableBuilder().
		Register(AirBlockID, Type{Name: "air", Transparent: true}).
		Register(StoneBlockID, Type{Name: "stone", Texture: Uniform(1, 0)}).
		Register(GrassBlockID, Type{
			Name:    "grass",
			Texture: TopSideBottom(Tile{U: 0, V: 0}, Tile{U: 3, V: 0}, Tile{U: 2, V: 0}),
		}).
		Register(DirtBlockID, Type{Name: "dirt", Texture: Uniform(2, 0)}).
		Register(CobblestoneBlockID, Type{Name: "cobblestone", Texture: Uniform(0, 1)}).
		Register(PlanksBlockID, Type{Name: "planks", Texture: Uniform(4, 0)}).
		Register(GlassBlockID, Type{
			Name:        "glass",
			Transparent: true,
			Texture:     Uniform(1, 3),
			Variant:     VariantTranslucent,
		}).
		Register(RoseBlockID, foliage("rose", 12, 0)).
		Register(SandBlockID, Type{Name: "sand", Texture: Uniform(2, 1)}).
		Register(LogBlockID, Type{
			Name:    "log",
			Texture: TopSide(Tile{U: 5, V: 1}, Tile{U: 4, V: 1}),
		}).
		Register(DandelionBlockID, foliage("dandelion", 13, 0)).
		Register(LeavesBlockID, Type{
			Name:        "leaves",
			Transparent: true,
			Texture:     Uniform(4, 3),
			Variant:     VariantCutout,
		}).
		Register(TallGrassBlockID, foliage("tall_grass", 7, 2)).
		Register(FernBlockID, foliage("fern", 8, 3)).
		Register(DiamondOreBlockID, Type{Name: "diamond_ore", Texture: Uniform(2, 3)}).
		Register(CoalOreBlockID, Type{Name: "coal_ore", Texture: Uniform(2, 2)}).
		Build()
	if err != nil {
		// встроенная таблица собирается из констант и не может быть некорректной
		panic(err)
	}
	return t
}

// foliage описывает прозрачное растение из двух скрещённых плоскостей
func foliage(name string, u, v float32) Type {
	return Type{
		Name:        name,
		Transparent: true,
		Shape:       ShapeCrossedPlanes,
		Texture:     Uniform(u, v),
		Variant:     VariantFoliage,
	}
}
