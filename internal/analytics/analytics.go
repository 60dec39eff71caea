// Package analytics emits gameplay events to a pluggable sink. Events are
// fire-and-forget: a sink must never block or fail the simulation.
package analytics

import (
	"github.com/charmbracelet/log"
)

// Event names emitted by the session.
const (
	EventLevelStart        = "level_start"
	EventLevelComplete     = "level_complete"
	EventLevelFail         = "level_fail"
	EventGemCollected      = "gem_collected"
	EventLevelUnlocked     = "level_unlocked"
	EventRewardedAdOffered = "rewarded_ad_offered"
	EventRewardedAdReward  = "rewarded_ad_rewarded"
)

// Sink receives gameplay events. Fields are flat string pairs so any
// backend (log, file, network) can serialize them without reflection.
type Sink interface {
	Emit(event string, fields map[string]string)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(string, map[string]string) {}

// LogSink writes events to a structured logger.
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink creates a sink backed by the given logger. A nil logger uses
// the package default.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{Logger: logger}
}

func (s *LogSink) Emit(event string, fields map[string]string) {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	s.Logger.Info(event, kv...)
}

// Recorder captures events in order for inspection in tests.
type Recorder struct {
	Events []RecordedEvent
}

// RecordedEvent is one captured emission.
type RecordedEvent struct {
	Name   string
	Fields map[string]string
}

func (r *Recorder) Emit(event string, fields map[string]string) {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.Events = append(r.Events, RecordedEvent{Name: event, Fields: copied})
}

// Count returns how many events with the given name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, e := range r.Events {
		if e.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent event with the given name, or nil.
func (r *Recorder) Last(name string) *RecordedEvent {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Name == name {
			return &r.Events[i]
		}
	}
	return nil
}
