package compose

import "github.com/renga-collective/renga/observability"

// Composition event types emitted during a run.
const (
	EventRunStart    observability.EventType = "compose.run.start"
	EventLineHuman   observability.EventType = "compose.line.human"
	EventLineAI      observability.EventType = "compose.line.ai"
	EventRunComplete observability.EventType = "compose.run.complete"
	EventRunError    observability.EventType = "compose.run.error"
)
