package observability

import "context"

// NoOpObserver discards every event. The zero value is ready to use.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
