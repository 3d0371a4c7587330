package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// World инкапсулирует Prometheus-метрики генерации и построения сеток.
// Метрики регистрируются в переданном регистре, поэтому несколько миров
// (например, в тестах) не конфликтуют друг с другом.
type World struct {
	registry *prometheus.Registry

	RegionsGenerated prometheus.Counter
	MeshRebuilds     prometheus.Counter
	FacesEmitted     prometheus.Counter
	EditsQueued      prometheus.Counter
	EditsApplied     prometheus.Counter
	PendingRegions   prometheus.Gauge
}

// NewWorld создаёт метрики мира. Если reg == nil, используется собственный
// регистр, доступный через Handler.
func NewWorld(reg prometheus.Registerer) *World {
	m := &World{
		RegionsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "regions_generated_total",
			Help:      "Общее число сгенерированных регионов.",
		}),
		MeshRebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "mesh_rebuilds_total",
			Help:      "Сколько раз перестраивалась сетка поверхности регионов.",
		}),
		FacesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "faces_emitted_total",
			Help:      "Суммарное число граней во всех построенных сетках.",
		}),
		EditsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "deferred_edits_queued_total",
			Help:      "Изменения блоков, отложенные до генерации региона.",
		}),
		EditsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "deferred_edits_applied_total",
			Help:      "Отложенные изменения, применённые при генерации региона.",
		}),
		PendingRegions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Name:      "pending_regions",
			Help:      "Количество несгенерированных регионов с отложенными изменениями.",
		}),
	}

	if reg == nil {
		m.registry = prometheus.NewRegistry()
		reg = m.registry
	}

	reg.MustRegister(
		m.RegionsGenerated,
		m.MeshRebuilds,
		m.FacesEmitted,
		m.EditsQueued,
		m.EditsApplied,
		m.PendingRegions,
	)
	return m
}

// Handler возвращает HTTP-обработчик /metrics. Для внешнего регистра
// используется глобальный обработчик Prometheus.
func (m *World) Handler() http.Handler {
	if m.registry != nil {
		return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
