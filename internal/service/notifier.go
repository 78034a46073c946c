package service

import (
	"sync"
	"time"

	"github.com/grabshow/storefront/internal/entity"
)

const defaultNoticeTTL = 3 * time.Second

// Notifier holds the single active notice per session: publishing a
// new one replaces whatever is currently shown, and a notice dismisses
// itself once its TTL passes. The core publishes state changes here;
// the transport layer reads them. The orchestrator never renders.
type Notifier struct {
	mu      sync.Mutex
	notices map[string]*entity.Notice
	ttl     time.Duration

	now func() time.Time
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = defaultNoticeTTL
	}
	return &Notifier{
		notices: make(map[string]*entity.Notice),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Publish replaces the active notice for token.
func (n *Notifier) Publish(token string, level entity.NoticeLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices[token] = &entity.Notice{
		Level:     level,
		Message:   message,
		CreatedAt: n.now(),
	}
}

// Current returns the active notice for token, or nil once it has
// auto-dismissed.
func (n *Notifier) Current(token string) *entity.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	notice, ok := n.notices[token]
	if !ok {
		return nil
	}
	if n.now().Sub(notice.CreatedAt) >= n.ttl {
		delete(n.notices, token)
		return nil
	}
	return notice
}

// Dismiss drops the active notice for token, if any.
func (n *Notifier) Dismiss(token string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.notices, token)
}
