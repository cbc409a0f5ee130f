package observability

import "context"

// MultiObserver fans each event out to several sinks in order.
type MultiObserver struct {
	sinks []Observer
}

// NewMultiObserver combines observers into a single one. Nil entries are
// dropped, an empty set collapses to NoOpObserver, and a lone sink is
// returned unwrapped.
func NewMultiObserver(observers ...Observer) Observer {
	sinks := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			sinks = append(sinks, obs)
		}
	}
	switch len(sinks) {
	case 0:
		return NoOpObserver{}
	case 1:
		return sinks[0]
	}
	return &MultiObserver{sinks: sinks}
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, sink := range m.sinks {
		sink.OnEvent(ctx, event)
	}
}
