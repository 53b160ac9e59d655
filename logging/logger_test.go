package logging

import "testing"

func TestNew(t *testing.T) {
	log, err := New("debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !log.Core().Enabled(-1) {
		t.Error("debug level not enabled")
	}
	if _, err := New("chatty"); err == nil {
		t.Error("unknown level accepted")
	}
}
