package orchestration

import (
	"sync"

	"github.com/vettlabs/vett-core/core/interviews"
)

// sessionLog is the append-only ordered record of assessed turns. Entries are
// never edited or removed after append; readers get copies.
type sessionLog struct {
	mu      sync.RWMutex
	entries []interviews.AssessmentRecord
}

func (l *sessionLog) append(record interviews.AssessmentRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, record)
}

func (l *sessionLog) snapshot() []interviews.AssessmentRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]interviews.AssessmentRecord, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *sessionLog) size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
