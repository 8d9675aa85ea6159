package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/forumcli/internal/client/models"
)

func toastError(message string) models.ToastMessage {
	return models.ToastMessage{Type: models.ToastError, Message: message}
}

func toastSuccess(message string) models.ToastMessage {
	return models.ToastMessage{Type: models.ToastSuccess, Message: message}
}

func toastInfo(message string) models.ToastMessage {
	return models.ToastMessage{Type: models.ToastInfo, Message: message}
}

// toastBanner holds the most recent toast for a fixed display duration.
// Current returns nil once the toast has expired; there is no timer, the
// expiry is checked on read.
type toastBanner struct {
	mu      sync.Mutex
	current *models.ToastMessage
	expires time.Time

	ttl   time.Duration
	nowFn func() time.Time // test seam
}

func newToastBanner(ttl time.Duration) *toastBanner {
	return &toastBanner{ttl: ttl, nowFn: time.Now}
}

func (b *toastBanner) Show(toast models.ToastMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	shown := toast
	b.current = &shown
	b.expires = b.nowFn().Add(b.ttl)
}

func (b *toastBanner) Current() *models.ToastMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil || b.nowFn().After(b.expires) {
		return nil
	}
	shown := *b.current
	return &shown
}

// showToast records a toast and prints it immediately.
func (a *App) showToast(toast models.ToastMessage) {
	a.banner.Show(toast)
	fmt.Fprintf(a.out, "[%s] %s\n", toast.Type, toast.Message)
}
