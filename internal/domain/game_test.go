package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2024, time.November, 27)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-11-27"` {
		t.Errorf("marshaled date = %s, want %q", data, "2024-11-27")
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-11-27"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.November || d.Day() != 27 {
		t.Errorf("parsed date = %v, want 2024-11-27", d)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestSnakeSegment_MarshalInline(t *testing.T) {
	seg := SnakeSegment{Position: Position{X: 3, Y: 7}, DotSide: "left"}

	data, err := json.Marshal(seg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["x"] != float64(3) || fields["y"] != float64(7) || fields["dotSide"] != "left" {
		t.Errorf("segment fields = %v, want x=3 y=7 dotSide=left at top level", fields)
	}
}

func TestSpeedForLength_Clamped(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1, 145},
		{8, 110},
		{18, 60},
		{20, 50},
		{25, 50},
		{100, 50},
	}
	for _, tt := range tests {
		if got := SpeedForLength(tt.length); got != tt.want {
			t.Errorf("SpeedForLength(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestGameMode_Valid(t *testing.T) {
	if !GameModeWalls.Valid() || !GameModePassThrough.Valid() {
		t.Error("known modes should be valid")
	}
	if GameMode("teleport").Valid() {
		t.Error("unknown mode should be invalid")
	}
	if GameMode("").Valid() {
		t.Error("empty mode should be invalid")
	}
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	if Direction("DIAGONAL").Valid() {
		t.Error("unknown direction should be invalid")
	}
}
