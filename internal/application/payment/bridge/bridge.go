// Package bridge mediates trust between the application and the hosted
// payment surface. Each open session owns a small state machine; signals are
// delivered to it only after their origin has been validated, and the success
// outcome is handed to the caller exactly once.
package bridge

import (
	"sync"

	"mentorhub/internal/shared/logger"
)

// Bridge is the registry of open payment sessions for this process. Sessions
// are ephemeral; a session that is closed or whose process dies is simply
// re-opened by the user, reusing the same pending ledger record.
type Bridge struct {
	mu       sync.RWMutex
	sessions map[string]*Handle
	logger   logger.Interface
}

func New(log logger.Interface) *Bridge {
	return &Bridge{
		sessions: make(map[string]*Handle),
		logger:   log,
	}
}

// Open registers a session and starts its surface-load countdown. The
// returned handle accepts signals and reports the terminal outcome.
func (b *Bridge) Open(cfg HandleConfig) (*Handle, error) {
	h, err := newHandle(cfg, b.logger, func(sid string) {
		b.remove(sid)
	})
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.sessions[h.SID()] = h
	b.mu.Unlock()

	b.logger.Infow("payment session opened",
		"session_sid", h.SID(),
		"record_sid", cfg.Session.RecordSID(),
		"domain", cfg.Session.DomainSlug(),
	)

	return h, nil
}

// Get returns the open handle for a session SID, or nil.
func (b *Bridge) Get(sid string) *Handle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sessions[sid]
}

// GetByRecord returns the open handle bound to a ledger record, or nil.
// Used to hand a double-clicked subscribe the session it already has.
func (b *Bridge) GetByRecord(recordSID string) *Handle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.sessions {
		if h.RecordSID() == recordSID {
			return h
		}
	}
	return nil
}

// OpenCount reports how many sessions are currently open.
func (b *Bridge) OpenCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.sessions)
}

func (b *Bridge) remove(sid string) {
	b.mu.Lock()
	delete(b.sessions, sid)
	b.mu.Unlock()
}
