// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fakelogger provides a Logger that records messages for assertions in tests.
package fakelogger

import (
	"fmt"
	"strings"
	"sync"
)

// Level is the severity of a recorded message.
type Level string

// Recorded severities.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Entry is one recorded message.
type Entry struct {
	Level   Level
	Message string
}

// Logger records every message it receives.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Logger.
func New() *Logger { return &Logger{} }

func (l *Logger) record(level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: strings.TrimSuffix(msg, "\n")})
}

// Entries returns a copy of the recorded messages.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Contains reports whether a message at the given level contains substr.
func (l *Logger) Contains(level Level, substr string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Count returns the number of messages at the given level containing substr.
func (l *Logger) Count(level Level, substr string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			n++
		}
	}
	return n
}

// Errorf records a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.record(LevelError, fmt.Sprintf(format, args...))
}

// Error records an error message.
func (l *Logger) Error(args ...any) { l.record(LevelError, fmt.Sprintln(args...)) }

// Warnf records a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) { l.record(LevelWarn, fmt.Sprintf(format, args...)) }

// Warn records a warning message.
func (l *Logger) Warn(args ...any) { l.record(LevelWarn, fmt.Sprintln(args...)) }

// Infof records a formatted info message.
func (l *Logger) Infof(format string, args ...any) { l.record(LevelInfo, fmt.Sprintf(format, args...)) }

// Info records an info message.
func (l *Logger) Info(args ...any) { l.record(LevelInfo, fmt.Sprintln(args...)) }

// Debugf records a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.record(LevelDebug, fmt.Sprintf(format, args...))
}

// Debug records a debug message.
func (l *Logger) Debug(args ...any) { l.record(LevelDebug, fmt.Sprintln(args...)) }
