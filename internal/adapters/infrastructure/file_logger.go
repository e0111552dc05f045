package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// FileLoggerAdapter appends one JSON object per log call to a file.
// Entries below the minimum level are dropped.
type FileLoggerAdapter struct {
	file     *os.File
	minLevel slog.Level
	now      func() time.Time
	mutex    sync.Mutex
}

// NewFileLoggerAdapter opens (or creates) the log file in append mode
func NewFileLoggerAdapter(logPath string, minLevel slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		file:     file,
		minLevel: minLevel,
		now:      time.Now,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelDebug, msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelInfo, msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelWarn, msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelError, msg, fields)
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) writeLogEntry(level slog.Level, msg string, fields []ports.Field) {
	if level < f.minLevel {
		return
	}

	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		entry[field.Key] = field.Value
	}
	// reserved keys win over fields with the same name
	entry["timestamp"] = f.now().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %s"}`, err))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
