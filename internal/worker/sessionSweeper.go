package worker

import (
	"context"
	"time"

	"github.com/grabshow/storefront/internal/session"

	"github.com/sirupsen/logrus"
)

// SessionSweeper evicts live in-memory sessions whose persisted
// identity record has expired, so logged-out or stale browsers do not
// pin mirror state forever.
type SessionSweeper struct {
	manager  *session.Manager
	interval time.Duration
}

func NewSessionSweeper(manager *session.Manager, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		manager:  manager,
		interval: interval,
	}
}

func (w *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Session sweeper started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SessionSweeper) sweep(ctx context.Context) {
	tokens := w.manager.Tokens()
	if len(tokens) == 0 {
		return
	}

	evicted := 0
	for _, token := range tokens {
		select {
		case <-ctx.Done():
			logrus.Info("Session sweep interrupted by context cancellation")
			return
		default:
		}

		exists, err := w.manager.Store().Exists(ctx, token)
		if err != nil {
			logrus.Errorf("Failed to check session %s: %v", token, err)
			continue
		}
		if !exists {
			w.manager.Evict(token)
			evicted++
		}
	}

	if evicted > 0 {
		logrus.Infof("Session sweep completed: %d stale sessions evicted", evicted)
	}
}
