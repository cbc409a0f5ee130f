package observability

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// ZapObserver emits events to a zap.Logger, for JSON log output in
// production runs. The event type becomes the log message and Data keys are
// flattened as top-level fields in sorted order.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver creates a ZapObserver that emits to the given logger.
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	return &ZapObserver{logger: logger}
}

func (o *ZapObserver) OnEvent(_ context.Context, event Event) {
	keys := make([]string, 0, len(event.Data))
	for k := range event.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.String("source", event.Source))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, event.Data[k]))
	}

	switch {
	case event.Level <= 8:
		o.logger.Debug(string(event.Type), fields...)
	case event.Level <= 12:
		o.logger.Info(string(event.Type), fields...)
	case event.Level <= 16:
		o.logger.Warn(string(event.Type), fields...)
	default:
		o.logger.Error(string(event.Type), fields...)
	}
}
