package observability

import (
	"fmt"
	"sort"
	"sync"
)

var (
	sinksMu sync.RWMutex
	sinks   = map[string]Observer{
		"off": NoOpObserver{},
	}
)

// RegisterObserver adds or replaces a named sink. The CLI registers the
// sinks selected by its log flags here so subsystems can look them up by
// name.
func RegisterObserver(name string, observer Observer) {
	sinksMu.Lock()
	defer sinksMu.Unlock()

	sinks[name] = observer
}

// GetObserver returns the sink registered under name. "off" (discarding
// events) is always present.
func GetObserver(name string) (Observer, error) {
	sinksMu.RLock()
	defer sinksMu.RUnlock()

	obs, ok := sinks[name]
	if !ok {
		return nil, fmt.Errorf("unknown observer %q (registered: %v)", name, registeredNames())
	}
	return obs, nil
}

// registeredNames lists the registered sink names in sorted order. The
// caller holds sinksMu.
func registeredNames() []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
