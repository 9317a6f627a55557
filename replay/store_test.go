package replay

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hopper/input"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "replay.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleStream() []input.ButtonSet {
	var frames []input.ButtonSet
	frames = append(frames, input.Repeat(0, 10)...)
	frames = append(frames, input.Repeat(input.Buttons(input.ButtonRight), 30)...)
	frames = append(frames, input.Repeat(input.Buttons(input.ButtonRight, input.ButtonA), 5)...)
	frames = append(frames, input.Buttons(input.ButtonLeft))
	return frames
}

func TestEncodeDecode(t *testing.T) {
	frames := sampleStream()
	spans := Encode(frames)

	if len(spans) != 4 {
		t.Fatalf("Expected 4 spans, got %d", len(spans))
	}
	if spans[1].Count != 30 || spans[1].Seq != 1 {
		t.Errorf("Unexpected span %+v", spans[1])
	}

	got := Decode(spans)
	if len(got) != len(frames) {
		t.Fatalf("Expected %d frames, got %d", len(frames), len(got))
	}
	for i := range frames {
		if got[i] != frames[i] {
			t.Fatalf("frame %d: expected %v, got %v", i, frames[i], got[i])
		}
	}

	if Encode(nil) != nil {
		t.Error("Expected no spans for empty stream")
	}
}

func TestStore_SaveLoad(t *testing.T) {
	s := openTestStore(t)
	frames := sampleStream()

	if err := s.Save("run1", frames); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("run1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(frames) {
		t.Fatalf("Expected %d frames, got %d", len(frames), len(got))
	}
	for i := range frames {
		if got[i] != frames[i] {
			t.Fatalf("frame %d: expected %v, got %v", i, frames[i], got[i])
		}
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("run", sampleStream()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	short := input.Repeat(input.Buttons(input.ButtonB), 3)
	if err := s.Save("run", short); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("run")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 || got[0] != input.Buttons(input.ButtonB) {
		t.Errorf("Expected replaced recording, got %v", got)
	}

	recs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("Expected 1 recording, got %d", len(recs))
	}
}

func TestStore_EmptyRecording(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("empty", nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load("empty")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no frames, got %d", len(got))
	}
}

func TestStore_NotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Load("missing"); !errors.Is(err, ErrRecordingNotFound) {
		t.Errorf("Expected ErrRecordingNotFound, got %v", err)
	}
	if err := s.Delete("missing"); !errors.Is(err, ErrRecordingNotFound) {
		t.Errorf("Expected ErrRecordingNotFound on delete, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("gone", sampleStream()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load("gone"); !errors.Is(err, ErrRecordingNotFound) {
		t.Errorf("Expected deleted recording to be gone, got %v", err)
	}

	var spans int64
	s.db.Model(&Span{}).Count(&spans)
	if spans != 0 {
		t.Errorf("Expected spans removed with recording, got %d", spans)
	}
}

func TestStore_InMemory(t *testing.T) {
	s, err := Open("", zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Save("mem", sampleStream()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Load("mem"); err != nil {
		t.Errorf("Load: %v", err)
	}
}

func TestRecorderPlayer(t *testing.T) {
	stream := sampleStream()
	rec := NewRecorder(input.NewScript(stream...))
	for range stream {
		rec.ReadHeld()
	}

	p := NewPlayer(rec.Frames(), true)
	for i, want := range stream {
		if p.QuitRequested() {
			t.Fatalf("frame %d: quit requested before end", i)
		}
		if got := p.ReadHeld(); got != want {
			t.Fatalf("frame %d: expected %v, got %v", i, want, got)
		}
	}
	if !p.Done() || !p.QuitRequested() {
		t.Error("Expected player done and requesting quit")
	}
	if got := p.ReadHeld(); got != 0 {
		t.Errorf("Expected nothing held after end, got %v", got)
	}
}
