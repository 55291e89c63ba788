// Package metrics provides ports.Recorder implementations.
package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dabron/scythe/internal/domain"
	"github.com/dabron/scythe/internal/ports"
)

// Prometheus records setup outcomes as Prometheus counters. Collectors are
// registered on first use.
type Prometheus struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	setups   *prometheus.CounterVec
	players  prometheus.Histogram
	rejected *prometheus.CounterVec
	repairs  *prometheus.CounterVec
}

var _ ports.Recorder = (*Prometheus)(nil)

// NewPrometheus creates a recorder on reg (prometheus.DefaultRegisterer if
// nil) under namespace ("scythe" if empty).
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "scythe"
	}
	return &Prometheus{reg: reg, namespace: namespace}
}

func (p *Prometheus) ensureRegistered() {
	p.once.Do(func() {
		p.setups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "setup",
			Name:      "generated_total",
			Help:      "Setups generated, by enabled expansions.",
		}, []string{"invaders_from_afar", "wind_gambit", "rise_of_fenris", "modular_board"})

		p.players = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "setup",
			Name:      "players",
			Help:      "Player count of generated setups.",
			Buckets:   prometheus.LinearBuckets(1, 1, domain.InvaderPlayerLimit),
		})

		p.rejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "setup",
			Name:      "rejected_total",
			Help:      "Setup requests rejected before assignment, by reason.",
		}, []string{"reason"})

		p.repairs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "repairs_total",
			Help:      "Banned faction/mat draws resolved, by repair kind (pool, swap).",
		}, []string{"kind"})

		p.reg.MustRegister(p.setups)
		p.reg.MustRegister(p.players)
		p.reg.MustRegister(p.rejected)
		p.reg.MustRegister(p.repairs)
	})
}

// SetupGenerated counts a finished setup.
func (p *Prometheus) SetupGenerated(f domain.Features, players int) {
	p.ensureRegistered()
	p.setups.WithLabelValues(
		strconv.FormatBool(f.InvadersFromAfar),
		strconv.FormatBool(f.WindGambit),
		strconv.FormatBool(f.RiseOfFenris),
		strconv.FormatBool(f.ModularBoard),
	).Inc()
	p.players.Observe(float64(players))
}

// SetupRejected counts a request refused before any randomness was used.
func (p *Prometheus) SetupRejected(reason string) {
	p.ensureRegistered()
	p.rejected.WithLabelValues(reason).Inc()
}

// RepairApplied counts one resolved banned draw.
func (p *Prometheus) RepairApplied(kind domain.RepairKind) {
	p.ensureRegistered()
	p.repairs.WithLabelValues(string(kind)).Inc()
}
