package mocks

import (
	"sync"

	"weatherview.app/internal/ports"
)

// LogEntry is one captured log call
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// Logger captures log calls instead of writing them
type Logger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(msg string, fields ...ports.Field) { l.record("DEBUG", msg, fields) }
func (l *Logger) Info(msg string, fields ...ports.Field)  { l.record("INFO", msg, fields) }
func (l *Logger) Warn(msg string, fields ...ports.Field)  { l.record("WARN", msg, fields) }
func (l *Logger) Error(msg string, fields ...ports.Field) { l.record("ERROR", msg, fields) }

// Messages returns the captured messages for a level
func (l *Logger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *Logger) record(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{Level: level, Message: msg, Fields: make(map[string]interface{}, len(fields))}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}
	l.Entries = append(l.Entries, entry)
}
