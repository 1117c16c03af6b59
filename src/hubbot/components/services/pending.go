package services

import (
	"sync"
	"time"
)

type pendingEntry struct {
	category string
	setAt    time.Time
}

// PendingStore tracks which service category each user most recently
// selected, so the next free-text message can be attributed to it. Entries
// expire after the TTL; the store is the only cross-request mutable state
// in the bot.
type PendingStore struct {
	entries map[string]pendingEntry
	mu      sync.Mutex
	ttl     time.Duration
}

func NewPendingStore(ttl time.Duration) *PendingStore {
	return &PendingStore{
		entries: make(map[string]pendingEntry),
		ttl:     ttl,
	}
}

// Set records the selected category, replacing any previous selection.
func (p *PendingStore) Set(userID, category string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[userID] = pendingEntry{category: category, setAt: time.Now()}
}

// Take consumes and clears the pending category for a user. Expired
// entries are dropped and reported as absent.
func (p *PendingStore) Take(userID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[userID]
	if !ok {
		return "", false
	}
	delete(p.entries, userID)

	if time.Since(entry.setAt) > p.ttl {
		return "", false
	}
	return entry.category, true
}

func (p *PendingStore) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	for userID, entry := range p.entries {
		if now.Sub(entry.setAt) > p.ttl {
			delete(p.entries, userID)
		}
	}
}

func (p *PendingStore) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			p.Cleanup()
		}
	}()
}
