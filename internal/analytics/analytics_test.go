package analytics

import "testing"

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	r.Emit(EventGemCollected, map[string]string{"level": "1", "value": "10"})
	r.Emit(EventGemCollected, map[string]string{"level": "1", "value": "10"})
	r.Emit(EventLevelComplete, map[string]string{"level": "1", "score": "220"})

	if len(r.Events) != 3 {
		t.Fatalf("recorded %d events, expected 3", len(r.Events))
	}
	if r.Count(EventGemCollected) != 2 {
		t.Errorf("Count(gem_collected) = %d, expected 2", r.Count(EventGemCollected))
	}
	if r.Count(EventLevelFail) != 0 {
		t.Errorf("Count(level_fail) = %d, expected 0", r.Count(EventLevelFail))
	}

	last := r.Last(EventLevelComplete)
	if last == nil {
		t.Fatal("Last(level_complete) returned nil")
	}
	if last.Fields["score"] != "220" {
		t.Errorf("score field = %q, expected \"220\"", last.Fields["score"])
	}
	if r.Last(EventLevelFail) != nil {
		t.Error("Last for an unseen event should return nil")
	}
}

func TestRecorderCopiesFields(t *testing.T) {
	r := &Recorder{}
	fields := map[string]string{"level": "2"}
	r.Emit(EventLevelStart, fields)

	fields["level"] = "99"
	if r.Events[0].Fields["level"] != "2" {
		t.Error("recorded fields should not alias the caller's map")
	}
}

func TestNopSink(t *testing.T) {
	var s NopSink
	s.Emit(EventLevelStart, nil) // must not panic
}
