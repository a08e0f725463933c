package pizzeria

import (
	"io"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/pizzeria/pkg/counter"
)

// PerKind counts pizzas by kind.
type PerKind struct {
	Margherita int64 `yaml:"margherita"`
	Marinara   int64 `yaml:"marinara"`
}

// Total returns the sum of both kinds.
func (p PerKind) Total() int64 {
	return p.Margherita + p.Marinara
}

// Summary is the report of one finished run. For every run
// Initial + Placed == Delivered + Discarded + OnCounter, per kind.
type Summary struct {
	RunID         string           `yaml:"run_id"`
	Reason        string           `yaml:"shutdown_reason"`
	Duration      time.Duration    `yaml:"duration"`
	Initial       counter.Snapshot `yaml:"initial,omitempty"`
	Placed        PerKind          `yaml:"placed"`
	Delivered     PerKind          `yaml:"delivered"`
	Discarded     PerKind          `yaml:"discarded"`
	OnCounter     counter.Snapshot `yaml:"on_counter"`
	FullWaits     int64            `yaml:"full_waits"`
	Notifications int64            `yaml:"notifications"`
	Deliveries    int64            `yaml:"deliveries"`
	Inspections   int64            `yaml:"inspections"`
}

// WriteYAML renders the summary as a YAML document.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

type perKindCounter struct {
	margherita atomic.Int64
	marinara   atomic.Int64
}

func (p *perKindCounter) add(kind counter.Kind, n int) {
	switch kind {
	case counter.Margherita:
		p.margherita.Add(int64(n))
	case counter.Marinara:
		p.marinara.Add(int64(n))
	}
}

func (p *perKindCounter) addRemoved(r counter.Removed) {
	p.margherita.Add(int64(r.Margherita))
	p.marinara.Add(int64(r.Marinara))
}

func (p *perKindCounter) load() PerKind {
	return PerKind{Margherita: p.margherita.Load(), Marinara: p.marinara.Load()}
}

// stats is updated concurrently by every worker.
type stats struct {
	placed        perKindCounter
	delivered     perKindCounter
	discarded     perKindCounter
	fullWaits     atomic.Int64
	notifications atomic.Int64
	deliveries    atomic.Int64
	inspections   atomic.Int64
}

func (k *Kitchen) summary(elapsed time.Duration) Summary {
	return Summary{
		RunID:         k.runID.String(),
		Reason:        k.coord.Reason(),
		Duration:      elapsed,
		Initial:       k.initial,
		Placed:        k.stats.placed.load(),
		Delivered:     k.stats.delivered.load(),
		Discarded:     k.stats.discarded.load(),
		OnCounter:     k.counter.Snapshot(),
		FullWaits:     k.stats.fullWaits.Load(),
		Notifications: k.stats.notifications.Load(),
		Deliveries:    k.stats.deliveries.Load(),
		Inspections:   k.stats.inspections.Load(),
	}
}
