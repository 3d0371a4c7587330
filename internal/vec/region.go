package vec

// FloorDiv делит с округлением вниз. Обычное деление в Go усекает к нулю,
// что ломает координаты регионов для отрицательных значений.
func FloorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}

// EuclidMod возвращает неотрицательный остаток от деления
func EuclidMod(a, n int) int {
	m := a % n
	if m < 0 {
		if n < 0 {
			m -= n
		} else {
			m += n
		}
	}
	return m
}

// ToRegionCoords преобразует глобальные координаты в координаты региона размером size
func (v Vec3) ToRegionCoords(size int) Vec3 {
	return Vec3{
		X: FloorDiv(v.X, size),
		Y: FloorDiv(v.Y, size),
		Z: FloorDiv(v.Z, size),
	}
}

// LocalInRegion возвращает локальные координаты внутри региона размером size
func (v Vec3) LocalInRegion(size int) Vec3 {
	return Vec3{
		X: EuclidMod(v.X, size),
		Y: EuclidMod(v.Y, size),
		Z: EuclidMod(v.Z, size),
	}
}

// SplitRegion возвращает координаты региона и локальную позицию одним вызовом
func (v Vec3) SplitRegion(size int) (region, local Vec3) {
	return v.ToRegionCoords(size), v.LocalInRegion(size)
}

// FromRegion собирает глобальные координаты из региона и локальной позиции
func FromRegion(region, local Vec3, size int) Vec3 {
	return region.Scale(size).Add(local)
}
