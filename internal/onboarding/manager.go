package onboarding

import (
	"log/slog"
	"sync"
)

// Manager owns one Flow per user email so repeated requests from the same
// user share the duplicate-submission guard and notice state.
type Manager struct {
	backend Creator
	refresh func(email string) RefreshFunc
	logger  *slog.Logger
	opts    []Option

	mu    sync.Mutex
	flows map[string]*Flow
}

// NewManager builds a flow manager. refresh produces the per-user credentials
// refresh callback and may be nil.
func NewManager(backend Creator, refresh func(email string) RefreshFunc, logger *slog.Logger, opts ...Option) *Manager {
	return &Manager{
		backend: backend,
		refresh: refresh,
		logger:  logger,
		opts:    opts,
		flows:   make(map[string]*Flow),
	}
}

// FlowFor returns the flow owned by the email, creating it on first use.
func (m *Manager) FlowFor(email string) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()
	if flow, ok := m.flows[email]; ok {
		return flow
	}
	var refresh RefreshFunc
	if m.refresh != nil {
		refresh = m.refresh(email)
	}
	flow := NewFlow(m.backend, refresh, m.logger, m.opts...)
	m.flows[email] = flow
	return flow
}

// Close tears down every flow, cancelling their pending timers.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, flow := range m.flows {
		flow.Close()
	}
	m.flows = make(map[string]*Flow)
}
