package component

import (
	"testing"
	"time"
)

func TestBuff_Active(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	b := NewBuff()
	if b.Active(BuffShield, now) {
		t.Error("fresh buff set should have nothing active")
	}

	b.Expiry[BuffShield] = now.Add(10 * time.Second)
	if !b.Active(BuffShield, now) {
		t.Error("shield should be active before expiry")
	}
	if b.Active(BuffRapidFire, now) {
		t.Error("unrelated kind should stay inactive")
	}
	if b.Active(BuffShield, now.Add(10*time.Second)) {
		t.Error("shield should be inactive at exactly its expiry")
	}
}

func TestBuffKind_String(t *testing.T) {
	tests := []struct {
		kind BuffKind
		want string
	}{
		{BuffRapidFire, "rapid"},
		{BuffShield, "shield"},
		{BuffSpreadShot, "spread"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
