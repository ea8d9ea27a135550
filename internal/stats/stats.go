package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "minesweeper"

// Recorder counts rounds and player actions of one process. The registry is
// private: nothing is exported over the network.
type Recorder struct {
	registry *prometheus.Registry
	started  prometheus.Counter
	won      prometheus.Counter
	lost     prometheus.Counter
	actions  *prometheus.CounterVec
}

type Summary struct {
	Started, Won, Lost int
	Actions            map[string]int
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Rounds initialized.",
		}),
		won: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_won_total",
			Help:      "Rounds that ended in a win.",
		}),
		lost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_lost_total",
			Help:      "Rounds that ended on a land mine.",
		}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Player actions applied to the board.",
		}, []string{"action"}),
	}
	r.registry.MustRegister(r.started, r.won, r.lost, r.actions)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) RoundStarted() { r.started.Inc() }
func (r *Recorder) RoundWon() { r.won.Inc() }
func (r *Recorder) RoundLost() { r.lost.Inc() }
func (r *Recorder) Action(action string) { r.actions.WithLabelValues(action).Inc() }

func (r *Recorder) Summary() (Summary, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Actions: make(map[string]int)}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			v := int(m.GetCounter().GetValue())
			switch f.GetName() {
			case namespace + "_rounds_started_total":
				s.Started = v
			case namespace + "_rounds_won_total":
				s.Won = v
			case namespace + "_rounds_lost_total":
				s.Lost = v
			case namespace + "_actions_total":
				s.Actions[actionLabel(m)] = v
			}
		}
	}
	return s, nil
}

func actionLabel(m *dto.Metric) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == "action" {
			return l.GetValue()
		}
	}
	return ""
}
