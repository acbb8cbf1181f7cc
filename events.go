package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const eventsFileName = "events.jsonl"

type appEvent struct {
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Event     string            `json:"event"`
	Side      string            `json:"side,omitempty"`
	Path      string            `json:"path,omitempty"`
	Error     string            `json:"error,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// eventLogger appends one JSON object per line to the session event log.
// Write failures are dropped; logging never interrupts the UI.
type eventLogger struct {
	path      string
	sessionID string
	now       func() time.Time
	mu        sync.Mutex
}

func newEventLogger(path, sessionID string) *eventLogger {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &eventLogger{
		path:      path,
		sessionID: strings.TrimSpace(sessionID),
		now:       time.Now,
	}
}

func (l *eventLogger) Emit(event appEvent) {
	if l == nil || strings.TrimSpace(event.Event) == "" {
		return
	}
	if event.SessionID == "" {
		event.SessionID = l.sessionID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = l.now().UTC()
	}
	if len(event.Extra) == 0 {
		event.Extra = nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(data)
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return fmt.Sprintf("%x", time.Now().UnixNano())
}
