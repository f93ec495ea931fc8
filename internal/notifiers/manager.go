package notifiers

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrUnknownDriver matches every *UnknownDriverError.
	ErrUnknownDriver = errors.New("unknown notification driver")
	// ErrNoDefaultDriver is returned when no channel was named and none is configured as default.
	ErrNoDefaultDriver = errors.New("no default notification driver configured")
)

// UnknownDriverError reports a channel name without a registered creator.
type UnknownDriverError struct {
	Name model.Channel
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("driver [%s] not supported", e.Name)
}

// Is lets errors.Is match the error against ErrUnknownDriver.
func (e *UnknownDriverError) Is(target error) bool {
	return target == ErrUnknownDriver
}

// Creator builds the driver for one channel.
type Creator func() (Driver, error)

// Manager resolves channel names to drivers. Each driver is created on its
// first resolution and the same instance is returned afterwards.
type Manager struct {
	mu       sync.RWMutex
	drivers  map[model.Channel]Driver
	creators map[model.Channel]Creator
	group    singleflight.Group

	defaultName model.Channel
	logger      zerolog.Logger
}

// NewManager creates a Manager with no registered creators.
func NewManager(defaultName model.Channel, logger *zerolog.Logger) *Manager {
	return &Manager{
		drivers:     make(map[model.Channel]Driver),
		creators:    make(map[model.Channel]Creator),
		defaultName: defaultName,
		logger:      logger.With().Str("component", "driver_manager").Logger(),
	}
}

// DefaultDriverName returns the configured default channel.
func (m *Manager) DefaultDriverName() model.Channel {
	return m.defaultName
}

// Default resolves the default channel's driver.
func (m *Manager) Default() (Driver, error) {
	return m.Driver("")
}

// Driver returns the driver for name, or for the default channel when name is empty.
func (m *Manager) Driver(name model.Channel) (Driver, error) {
	if name == "" {
		name = m.DefaultDriverName()
		if name == "" {
			return nil, ErrNoDefaultDriver
		}
	}

	if d, ok := m.cached(name); ok {
		return d, nil
	}

	v, err, _ := m.group.Do(string(name), func() (interface{}, error) {
		return m.create(name)
	})
	if err != nil {
		return nil, err
	}
	return v.(Driver), nil
}

// Extend registers the creator for name, replacing any previous one.
// A driver already created for name stays cached and keeps being returned.
func (m *Manager) Extend(name model.Channel, creator Creator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creators[name] = creator
}

// Channels returns the registered channel names in sorted order.
func (m *Manager) Channels() []model.Channel {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]model.Channel, 0, len(m.creators))
	for name := range m.creators {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (m *Manager) cached(name model.Channel) (Driver, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[name]
	return d, ok
}

// create runs at most once at a time per name; the cache is re-checked because
// a previous flight may have finished between the caller's lookup and now.
// Errors are returned unlogged, the caller owns reporting them.
func (m *Manager) create(name model.Channel) (Driver, error) {
	m.mu.RLock()
	if d, ok := m.drivers[name]; ok {
		m.mu.RUnlock()
		return d, nil
	}
	creator, ok := m.creators[name]
	m.mu.RUnlock()

	if !ok {
		return nil, &UnknownDriverError{Name: name}
	}

	d, err := creator()
	if err != nil {
		return nil, fmt.Errorf("create %s driver: %w", name, err)
	}

	m.mu.Lock()
	m.drivers[name] = d
	m.mu.Unlock()

	m.logger.Info().Str("channel", string(name)).Msg("driver created")
	return d, nil
}
