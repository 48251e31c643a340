package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_renders_total",
		Help: "Menus rendered, by template and mode (live or preview).",
	}, []string{"template", "mode"})

	renderFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_render_fallback_total",
		Help: "Renders of a semantic template that fell back to an even split.",
	}, []string{"template"})

	renderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "menu_render_duration_seconds",
		Help:    "Time spent building and rendering a menu, excluding the snapshot fetch.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"template"})
)
