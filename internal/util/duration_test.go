package util

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"bare integer is seconds", "30", 30 * time.Second, false},
		{"zero", "0", 0, false},
		{"go duration seconds", "45s", 45 * time.Second, false},
		{"go duration minutes", "2m", 2 * time.Minute, false},
		{"go duration composite", "1m30s", 90 * time.Second, false},
		{"empty", "", 0, true},
		{"garbage", "soon", 0, true},
		{"unit only", "s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasCommand(t *testing.T) {
	if !HasCommand("go") && !HasCommand("ls") {
		t.Skip("no known commands available in PATH")
	}
	if HasCommand("definitely-not-a-real-command-xyz") {
		t.Error("expected lookup of nonexistent command to fail")
	}
}
