package credentials

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (f *fakeClipboard) WriteText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func (f *fakeClipboard) lastWrite() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return ""
	}
	return f.writes[len(f.writes)-1]
}

func activeCreds() Credentials {
	return Credentials{
		Server:    "MTT",
		Login:     "100234",
		Password:  "secret123",
		AccountID: "acc-42",
		Status:    StatusActive,
	}
}

func TestViewStartsLoading(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	snap := view.Snapshot()
	assert.Equal(t, PhaseLoading, snap.Phase)
	assert.Empty(t, snap.Login)
}

func TestSetErrorPhase(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	view.SetError("fetch failed")
	snap := view.Snapshot()
	assert.Equal(t, PhaseError, snap.Phase)
	assert.Equal(t, "fetch failed", snap.Error)
}

func TestReadyActiveShowsValues(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	view.SetReady(activeCreds())
	snap := view.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, "100234", snap.Login)
	assert.Equal(t, "secret123", snap.Password)
	assert.True(t, snap.CanCopy)
	assert.Empty(t, snap.Placeholder)
	assert.False(t, snap.Overlay)
}

func TestReadyInactiveBlanksValues(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	creds := activeCreds()
	creds.Status = "inactive"
	view.SetReady(creds)

	snap := view.Snapshot()
	assert.Empty(t, snap.Login)
	assert.Empty(t, snap.Password)
	assert.Empty(t, snap.Server)
	assert.Equal(t, InactivePlaceholder, snap.Placeholder)
	assert.False(t, snap.CanCopy)
	assert.True(t, snap.Overlay, "inactive account shows the create-account overlay")
}

func TestOverlayShownWhenFieldsEmpty(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	creds := activeCreds()
	creds.Password = ""
	view.SetReady(creds)
	assert.True(t, view.OverlayVisible())
}

func TestDismissOverlayIsPureUIToggle(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	creds := activeCreds()
	creds.Login = ""
	view.SetReady(creds)
	require.True(t, view.OverlayVisible())

	view.DismissOverlay()
	assert.False(t, view.OverlayVisible(), "dismiss hides the overlay even while the condition holds")

	// A data refresh recomputes the condition.
	view.SetReady(creds)
	assert.True(t, view.OverlayVisible())
}

func TestCopyFlipsIndicatorAndReverts(t *testing.T) {
	clip := &fakeClipboard{}
	view := NewView(clip, "https://terminal.example", WithCopiedTTL(20*time.Millisecond))
	defer view.Close()

	view.SetReady(activeCreds())
	require.NoError(t, view.Copy(FieldPassword))

	assert.Equal(t, "secret123", clip.lastWrite())
	assert.True(t, view.Copied(FieldPassword))
	assert.False(t, view.Copied(FieldLogin), "indicators are independent per field")

	assert.Eventually(t, func() bool {
		return !view.Copied(FieldPassword)
	}, time.Second, 5*time.Millisecond)
}

func TestCopyIndicatorsIndependentTimers(t *testing.T) {
	clip := &fakeClipboard{}
	view := NewView(clip, "https://terminal.example", WithCopiedTTL(50*time.Millisecond))
	defer view.Close()

	view.SetReady(activeCreds())
	require.NoError(t, view.Copy(FieldLogin))
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, view.Copy(FieldAccountID))

	assert.Eventually(t, func() bool {
		return !view.Copied(FieldLogin) && view.Copied(FieldAccountID)
	}, time.Second, 5*time.Millisecond, "login expires first, account id still lit")
}

func TestCopyRejectedWhenInactive(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	creds := activeCreds()
	creds.Status = "inactive"
	view.SetReady(creds)

	assert.ErrorIs(t, view.Copy(FieldLogin), ErrNotCopyable)
}

func TestCopyClipboardFailureDoesNotLightIndicator(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("denied")}
	view := NewView(clip, "https://terminal.example")
	defer view.Close()

	view.SetReady(activeCreds())
	assert.Error(t, view.Copy(FieldLogin))
	assert.False(t, view.Copied(FieldLogin))
}

func TestToggleRevealPasswordIndependentOfClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	view := NewView(clip, "https://terminal.example")
	defer view.Close()

	view.SetReady(activeCreds())
	assert.True(t, view.ToggleRevealPassword())
	require.NoError(t, view.Copy(FieldPassword))
	assert.Equal(t, "secret123", clip.lastWrite(), "copied value ignores visibility state")
	assert.False(t, view.ToggleRevealPassword())
}

func TestTerminalLaunch(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example")
	defer view.Close()

	url := view.OpenTerminal(false)
	assert.Equal(t, "https://terminal.example", url)
	assert.False(t, view.Snapshot().EmbeddedTerminal, "new-tab launch is stateless")

	view.OpenTerminal(true)
	assert.True(t, view.Snapshot().EmbeddedTerminal)
	view.CloseTerminal()
	assert.False(t, view.Snapshot().EmbeddedTerminal)
}

func TestTerminalURL(t *testing.T) {
	got := TerminalURL("https://platform.fundezy.io", "https://proxy.example/signin")
	assert.Equal(t, "https://platform.fundezy.io?redirect_url=https%3A%2F%2Fproxy.example%2Fsignin", got)
}

func TestCloseCancelsCopyTimers(t *testing.T) {
	view := NewView(&fakeClipboard{}, "https://terminal.example", WithCopiedTTL(10*time.Millisecond))
	view.SetReady(activeCreds())
	require.NoError(t, view.Copy(FieldLogin))
	view.Close()

	time.Sleep(30 * time.Millisecond)
	assert.True(t, view.Copied(FieldLogin), "expiry must not fire after teardown")
}
