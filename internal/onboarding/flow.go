// Package onboarding drives the demo-account creation flow.
package onboarding

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fundezy-io/fundezy-web/internal/matchtrader"
)

// State is the onboarding flow's current phase.
type State string

const (
	StateIdle     State = "idle"
	StateCreating State = "creating"
	StateSuccess  State = "success"
	StateFailed   State = "failed"
	// StateFeedback is entered when the backend reports the demo account pool
	// is exhausted; the client collects feedback instead of offering a retry.
	StateFeedback State = "feedback"
)

const (
	successMessage    = "Demo account created successfully!"
	defaultSuccessTTL = 5 * time.Second
)

// ErrMissingName rejects a submission before any network call is made.
var ErrMissingName = errors.New("please enter your first name and last name")

// ErrInProgress guards against duplicate submissions while one is outstanding.
var ErrInProgress = errors.New("account creation already in progress")

// Creator is the slice of the backend client the flow needs.
type Creator interface {
	CreateDemoAccount(ctx context.Context, input matchtrader.CreateDemoAccountInput) (matchtrader.CreateDemoAccountResult, error)
}

// RefreshFunc reloads credentials after a successful creation. Its errors are
// logged and swallowed: a refresh failure never fails the creation.
type RefreshFunc func(ctx context.Context) error

// Input is the form data for a demo-account request.
type Input struct {
	Email     string
	FirstName string
	LastName  string
}

// Flow is the account-onboarding state machine for one user. Safe for
// concurrent use; duplicate submissions while a request is outstanding are
// rejected with ErrInProgress.
type Flow struct {
	backend    Creator
	refresh    RefreshFunc
	logger     *slog.Logger
	successTTL time.Duration

	mu           sync.Mutex
	state        State
	inFlight     bool
	closed       bool
	errMessage   string
	notice       string
	noticeTimer  *time.Timer
	noticeEpoch  int
}

// Option configures a Flow.
type Option func(*Flow)

// WithSuccessTTL overrides how long the transient success notice lingers.
func WithSuccessTTL(ttl time.Duration) Option {
	return func(f *Flow) {
		f.successTTL = ttl
	}
}

// NewFlow builds an onboarding flow. refresh may be nil.
func NewFlow(backend Creator, refresh RefreshFunc, logger *slog.Logger, opts ...Option) *Flow {
	f := &Flow{
		backend:    backend,
		refresh:    refresh,
		logger:     logger,
		successTTL: defaultSuccessTTL,
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateDemoAccount validates the input, requests the account and settles the
// flow state. First and last name must be non-empty; validation failures make
// no network call. On success the refresh callback runs with its error
// suppressed, and the success notice auto-clears after the configured TTL.
func (f *Flow) CreateDemoAccount(ctx context.Context, input Input) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		f.mu.Lock()
		f.errMessage = ErrMissingName.Error()
		f.mu.Unlock()
		return ErrMissingName
	}

	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return ErrInProgress
	}
	f.inFlight = true
	f.state = StateCreating
	f.errMessage = ""
	f.clearNoticeLocked()
	f.mu.Unlock()

	result, err := f.backend.CreateDemoAccount(ctx, matchtrader.CreateDemoAccountInput{
		Email:     input.Email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	})

	f.mu.Lock()
	f.inFlight = false

	if err == nil && result.Success {
		f.state = StateSuccess
		f.setNoticeLocked(successMessage)
		f.mu.Unlock()

		if f.refresh != nil {
			if refreshErr := f.refresh(ctx); refreshErr != nil {
				f.logger.Error("failed to refresh credentials after account creation",
					slog.String("email", input.Email),
					slog.Any("error", refreshErr),
				)
			}
		}
		return nil
	}

	message := result.Message
	if err != nil {
		message = err.Error()
	}
	f.errMessage = message
	if strings.Contains(message, matchtrader.NoDemoAccountsMessage) {
		f.state = StateFeedback
	} else {
		f.state = StateFailed
	}
	f.mu.Unlock()

	if err != nil {
		return err
	}
	return errors.New(message)
}

// setNoticeLocked installs the transient notice and arms its expiry timer.
// Callers must hold f.mu.
func (f *Flow) setNoticeLocked(message string) {
	f.clearNoticeLocked()
	f.notice = message
	f.noticeEpoch++
	epoch := f.noticeEpoch
	f.noticeTimer = time.AfterFunc(f.successTTL, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// A newer notice or a Close() invalidates this expiry.
		if f.closed || f.noticeEpoch != epoch {
			return
		}
		f.notice = ""
	})
}

func (f *Flow) clearNoticeLocked() {
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}
	f.notice = ""
}

// Snapshot reports the flow's externally visible state.
type Snapshot struct {
	State   State  `json:"state"`
	Error   string `json:"error,omitempty"`
	Notice  string `json:"notice,omitempty"`
	Pending bool   `json:"pending,omitempty"`
}

// Snapshot returns a copy of the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		State:   f.state,
		Error:   f.errMessage,
		Notice:  f.notice,
		Pending: f.inFlight,
	}
}

// Close cancels any pending notice expiry. The flow must not be used after.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}
}
