package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.

type Config struct {
	World      WorldConfig   `yaml:"world"`
	BlocksFile string        `yaml:"blocks_file"`
	Logging    LoggingConfig `yaml:"logging"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

// WorldConfig параметры генерации мира
type WorldConfig struct {
	Seed             int64       `yaml:"seed"`
	Radius           int         `yaml:"radius"`       // регионов в каждую сторону по X и Z
	MinRegionY       int         `yaml:"min_region_y"` // включительно
	MaxRegionY       int         `yaml:"max_region_y"` // не включительно
	SurfaceScale     float64     `yaml:"surface_scale"`
	SurfaceAmplitude float64     `yaml:"surface_amplitude"`
	SurfaceBias      float64     `yaml:"surface_bias"`
	CaveScale        float64     `yaml:"cave_scale"`
	CaveCutoff       float64     `yaml:"cave_cutoff"`
	NoiseOffset      *[2]float64 `yaml:"noise_offset,omitempty"` // nil - выводится из сида
}

type LoggingConfig struct {
	Dir          string `yaml:"dir"`
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Значения по умолчанию
const (
	DefaultSeed             int64 = 12345
	DefaultRadius                 = 3
	DefaultMaxRegionY             = 3
	DefaultSurfaceScale           = 0.02
	DefaultSurfaceAmplitude       = 5.0
	DefaultSurfaceBias            = 10.1
	DefaultCaveScale              = 0.1
	DefaultCaveCutoff             = 0.6
)

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.WithDefaults()
	return cfg
}

// WithDefaults заполняет незаданные поля значениями по умолчанию
func (c *Config) WithDefaults() *Config {
	w := &c.World
	if w.Seed == 0 {
		w.Seed = getInt64WithEnvFallback(0, "VOXEL_SEED", DefaultSeed)
	}
	if w.Radius <= 0 {
		w.Radius = DefaultRadius
	}
	if w.MaxRegionY <= w.MinRegionY {
		w.MaxRegionY = w.MinRegionY + DefaultMaxRegionY
	}
	if w.SurfaceScale == 0 {
		w.SurfaceScale = DefaultSurfaceScale
	}
	if w.SurfaceAmplitude == 0 {
		w.SurfaceAmplitude = DefaultSurfaceAmplitude
	}
	if w.SurfaceBias == 0 {
		w.SurfaceBias = DefaultSurfaceBias
	}
	if w.CaveScale == 0 {
		w.CaveScale = DefaultCaveScale
	}
	if w.CaveCutoff == 0 {
		w.CaveCutoff = DefaultCaveCutoff
	}
	if c.Logging.ConsoleLevel == "" {
		c.Logging.ConsoleLevel = "INFO"
	}
	if c.Logging.FileLevel == "" {
		c.Logging.FileLevel = "DEBUG"
	}
	return c
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	if c.World.Radius <= 0 {
		return fmt.Errorf("world.radius должен быть положительным, получено %d", c.World.Radius)
	}
	if c.World.MaxRegionY <= c.World.MinRegionY {
		return fmt.Errorf("world.max_region_y (%d) должен быть больше min_region_y (%d)",
			c.World.MaxRegionY, c.World.MinRegionY)
	}
	if c.World.SurfaceScale <= 0 || c.World.CaveScale <= 0 {
		return fmt.Errorf("масштабы шума должны быть положительными")
	}
	return nil
}

// getInt64WithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getInt64WithEnvFallback(configValue int64, envVar string, defaultValue int64) int64 {
	// Если значение задано в конфиге, используем его
	if configValue != 0 {
		return configValue
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.ParseInt(envVal, 10, 64); err == nil && v != 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultValue
}

// Load читает YAML файл конфигурации и дополняет его значениями по умолчанию.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG, иначе возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return Default(), nil // конфиг не задан, используем дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
