package dataset

import (
	"errors"
	"sort"
	"sync"
)

// MultiStepReasoningName is the registered name of the builtin dataset.
const MultiStepReasoningName = "multi_step_reasoning"

// Sentinel errors for the registry.
var (
	// ErrEmptyName indicates Register was called with an empty name.
	ErrEmptyName = errors.New("dataset: dataset name is empty")

	// ErrNilFactory indicates Register was called with a nil factory.
	ErrNilFactory = errors.New("dataset: factory is nil")

	// ErrDuplicateDataset indicates the name is already registered.
	ErrDuplicateDataset = errors.New("dataset: name already registered")

	// ErrUnknownDataset indicates Open was called with an unregistered name.
	ErrUnknownDataset = errors.New("dataset: unknown dataset name")
)

// Factory builds a dataset from a validated-on-construction Config.
type Factory func(cfg Config) (*Dataset, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register binds name to factory. Registration is typically done from an
// init function; duplicate names are rejected, never overwritten.
func Register(name string, factory Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if factory == nil {
		return ErrNilFactory
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		return ErrDuplicateDataset
	}
	registry[name] = factory
	return nil
}

// Open builds the named dataset with cfg.
func Open(name string, cfg Config) (*Dataset, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownDataset
	}
	return factory(cfg)
}

// Names returns the registered dataset names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	if err := Register(MultiStepReasoningName, func(cfg Config) (*Dataset, error) {
		return NewDataset(MultiStepReasoningName, cfg)
	}); err != nil {
		panic(err)
	}
}
