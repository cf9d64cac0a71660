// Package credentials models the trading-account credential display: a
// loading/error/ready state machine with overlay, reveal and clipboard state.
// The view owns no fetching; callers feed it data.
package credentials

import (
	"errors"
	"net/url"
	"sync"
	"time"
)

// StatusActive is the account status that unlocks credential display.
const StatusActive = "active"

// InactivePlaceholder is shown in place of values when the account is inactive.
const InactivePlaceholder = "Account inactive"

const defaultCopiedTTL = 2 * time.Second

// Phase is the view's coarse state, driven entirely by the caller.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// Field names a copyable credential field.
type Field string

const (
	FieldLogin     Field = "login"
	FieldPassword  Field = "password"
	FieldAccountID Field = "accountId"
)

// Credentials is the display-only copy of the account's login details.
type Credentials struct {
	Server    string `json:"server"`
	Login     string `json:"login"`
	Password  string `json:"password"`
	AccountID string `json:"accountId"`
	Status    string `json:"status"`
}

// Clipboard abstracts the copy destination so tests can observe writes.
type Clipboard interface {
	WriteText(text string) error
}

// ErrNotCopyable is returned when a copy is requested while the view is not
// ready or the account is inactive.
var ErrNotCopyable = errors.New("credentials not available to copy")

// TerminalURL builds the fixed web-terminal launch target.
func TerminalURL(platformURL, redirectTarget string) string {
	return platformURL + "?redirect_url=" + url.QueryEscape(redirectTarget)
}

// View is the credential display state machine for one user. Safe for
// concurrent use. Each copied indicator owns an independent expiry timer;
// Close cancels them all so none fires after teardown.
type View struct {
	clipboard   Clipboard
	copiedTTL   time.Duration
	terminalURL string

	mu               sync.Mutex
	phase            Phase
	errMessage       string
	creds            Credentials
	overlay          bool
	passwordRevealed bool
	embeddedTerminal bool
	closed           bool
	copied           map[Field]bool
	copyTimers       map[Field]*time.Timer
	copyEpochs       map[Field]int
}

// Option configures a View.
type Option func(*View)

// WithCopiedTTL overrides how long a copied indicator stays lit.
func WithCopiedTTL(ttl time.Duration) Option {
	return func(v *View) {
		v.copiedTTL = ttl
	}
}

// NewView builds a credential view in the loading phase.
func NewView(clipboard Clipboard, terminalURL string, opts ...Option) *View {
	v := &View{
		clipboard:   clipboard,
		copiedTTL:   defaultCopiedTTL,
		terminalURL: terminalURL,
		phase:       PhaseLoading,
		copied:      make(map[Field]bool),
		copyTimers:  make(map[Field]*time.Timer),
		copyEpochs:  make(map[Field]int),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetLoading puts the view back into the loading phase.
func (v *View) SetLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.phase = PhaseLoading
	v.errMessage = ""
}

// SetError records a fetch failure.
func (v *View) SetError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.phase = PhaseError
	v.errMessage = message
}

// SetReady installs fresh credential data and recomputes the overlay: it is
// shown whenever any of server/login/password is empty or the account is not
// active. A previous dismissal does not survive a data update.
func (v *View) SetReady(creds Credentials) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.phase = PhaseReady
	v.errMessage = ""
	v.creds = creds
	v.overlay = creds.Server == "" || creds.Login == "" || creds.Password == "" || creds.Status != StatusActive
}

// DismissOverlay hides the create-account overlay. Pure UI toggle: the
// underlying condition is untouched and the next SetReady recomputes it.
func (v *View) DismissOverlay() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.overlay = false
}

// OverlayVisible reports whether the create-account overlay is showing.
func (v *View) OverlayVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.overlay
}

// Copy writes the named field's value to the clipboard and lights its copied
// indicator for the configured TTL. Indicators are independent per field.
func (v *View) Copy(field Field) error {
	v.mu.Lock()
	if v.phase != PhaseReady || v.creds.Status != StatusActive {
		v.mu.Unlock()
		return ErrNotCopyable
	}
	var value string
	switch field {
	case FieldLogin:
		value = v.creds.Login
	case FieldPassword:
		value = v.creds.Password
	case FieldAccountID:
		value = v.creds.AccountID
	default:
		v.mu.Unlock()
		return errors.New("unknown credential field")
	}
	v.mu.Unlock()

	if err := v.clipboard.WriteText(value); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	if t := v.copyTimers[field]; t != nil {
		t.Stop()
	}
	v.copied[field] = true
	v.copyEpochs[field]++
	epoch := v.copyEpochs[field]
	v.copyTimers[field] = time.AfterFunc(v.copiedTTL, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.closed || v.copyEpochs[field] != epoch {
			return
		}
		v.copied[field] = false
	})
	return nil
}

// Copied reports whether the field's copied indicator is currently lit.
func (v *View) Copied(field Field) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.copied[field]
}

// ToggleRevealPassword flips the local password visibility and returns the
// new value. It has no effect on clipboard behavior.
func (v *View) ToggleRevealPassword() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.passwordRevealed = !v.passwordRevealed
	return v.passwordRevealed
}

// OpenTerminal returns the web-terminal URL. Embedded launches additionally
// flip the fullscreen-frame toggle; new-tab launches are stateless.
func (v *View) OpenTerminal(embedded bool) string {
	if embedded {
		v.mu.Lock()
		v.embeddedTerminal = true
		v.mu.Unlock()
	}
	return v.terminalURL
}

// CloseTerminal hides the embedded fullscreen frame.
func (v *View) CloseTerminal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.embeddedTerminal = false
}

// Snapshot is the display projection of the view.
type Snapshot struct {
	Phase            Phase  `json:"phase"`
	Error            string `json:"error,omitempty"`
	Server           string `json:"server"`
	Login            string `json:"login"`
	Password         string `json:"password"`
	AccountID        string `json:"accountId"`
	Placeholder      string `json:"placeholder,omitempty"`
	CanCopy          bool   `json:"canCopy"`
	Overlay          bool   `json:"overlay"`
	PasswordRevealed bool   `json:"passwordRevealed"`
	EmbeddedTerminal bool   `json:"embeddedTerminal"`
	TerminalURL      string `json:"terminalUrl,omitempty"`
}

// Snapshot renders the current state. When the account is not active every
// field value is blanked, the inactive placeholder is set and copy/reveal
// affordances are withheld.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		Phase:            v.phase,
		Error:            v.errMessage,
		Overlay:          v.overlay,
		PasswordRevealed: v.passwordRevealed,
		EmbeddedTerminal: v.embeddedTerminal,
	}
	if v.phase != PhaseReady {
		return snap
	}

	if v.creds.Status == StatusActive {
		snap.Server = v.creds.Server
		snap.Login = v.creds.Login
		snap.Password = v.creds.Password
		snap.AccountID = v.creds.AccountID
		snap.CanCopy = true
		snap.TerminalURL = v.terminalURL
	} else {
		snap.Placeholder = InactivePlaceholder
	}
	return snap
}

// Close cancels every pending copied-indicator timer. The view must not be
// used after.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	for field, t := range v.copyTimers {
		t.Stop()
		delete(v.copyTimers, field)
	}
}
