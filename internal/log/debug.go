// Package log provides the debug log used across lazyfilm. Messages are
// buffered in memory until a destination is chosen with SetFile, so nothing
// logged during start-up is lost.
package log

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// sink is the io.Writer behind the standard logger.
type sink struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	debugSink = &sink{}
	stdLogger = log.New(debugSink, "", log.LstdFlags|log.Lmicroseconds)
)

// Write sends p to the log file, or keeps it until one is configured.
func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discard {
		return len(p), nil
	}
	if s.file != nil {
		n, err := s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	}
	// p may be reused by the caller
	s.buffer = append(s.buffer, p...)
	return len(p), nil
}

// SetFile directs the log to path, creating the file when needed and
// flushing everything buffered so far. An empty path drops the buffer and
// discards later messages.
func SetFile(path string) error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file != nil {
		_ = debugSink.file.Close()
		debugSink.file = nil
	}

	if path == "" {
		debugSink.discard = true
		debugSink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		debugSink.discard = true
		debugSink.buffer = nil
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	debugSink.file = f
	debugSink.discard = false
	if len(debugSink.buffer) > 0 {
		_, _ = f.Write(debugSink.buffer)
		_ = f.Sync()
		debugSink.buffer = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Component returns a Printf that tags every message with name.
func Component(name string) func(string, ...any) {
	prefix := "[" + name + "] "
	return func(format string, args ...any) {
		stdLogger.Printf(prefix+format, args...)
	}
}

// Close closes the log file if one is open.
func Close() error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file == nil {
		return nil
	}
	err := debugSink.file.Close()
	debugSink.file = nil
	return err
}
