package util

import "math/rand"

// Номера независимых потоков случайных чисел одного мира
const (
	StreamDecoration int64 = 1 // руды, растительность, деревья
	StreamOffset     int64 = 2 // смещение поля шума
)

// NewStream создаёт детерминированный генератор случайных чисел для потока
// stream мира с сидом seed. Потоки с разными номерами не пересекаются,
// поэтому смещение шума не зависит от количества вызовов в генерации.
func NewStream(seed, stream int64) *rand.Rand {
	return rand.New(rand.NewSource(mixSeed(seed, stream)))
}

// mixSeed перемешивает сид и номер потока (splitmix64)
func mixSeed(seed, stream int64) int64 {
	z := uint64(seed) + uint64(stream)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

// NewRegionStream создаёт генератор для региона (x, y, z). Последовательность
// зависит только от сида и координат, а не от порядка генерации регионов.
func NewRegionStream(seed int64, x, y, z int) *rand.Rand {
	key := int64(x)*73856093 ^ int64(y)*19349663 ^ int64(z)*83492791
	return rand.New(rand.NewSource(mixSeed(mixSeed(seed, StreamDecoration), key)))
}
