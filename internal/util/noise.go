package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума Перлина
const (
	noiseAlpha   = 2.0 // Сглаживание шума
	noiseBeta    = 2.0 // Частота шума
	noiseOctaves = 3   // Количество октав
)

// Noise - детерминированный генератор когерентного шума для одного мира.
// В отличие от глобального генератора, каждый мир владеет своим экземпляром,
// поэтому два мира с разными сидами не влияют друг на друга.
type Noise struct {
	seed int64
	p    *perlin.Perlin
}

// NewNoise создаёт генератор шума Перлина с указанным сидом
func NewNoise(seed int64) *Noise {
	return &Noise{
		seed: seed,
		p:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Seed возвращает сид генератора
func (n *Noise) Seed() int64 {
	return n.seed
}

// Noise2D возвращает значение двумерного шума (примерно от -1 до 1)
func (n *Noise) Noise2D(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

// Noise3D возвращает значение трёхмерного шума (примерно от -1 до 1)
func (n *Noise) Noise3D(x, y, z float64) float64 {
	return n.p.Noise3D(x, y, z)
}
