package annotate

import "testing"

func TestDecode_AllValidCodes(t *testing.T) {
	valid := []int{0, 1, 2, 3, 11, 12, 13, 21, 22, 23, 31, 32, 33}

	for _, code := range valid {
		pos := Decode(code)

		wantOut := code < 10
		if pos.OutOfFrame != wantOut {
			t.Errorf("Decode(%d).OutOfFrame = %v, want %v", code, pos.OutOfFrame, wantOut)
		}

		alignX := pos.Align / 10
		if alignX < 1 || alignX > 3 {
			t.Errorf("Decode(%d): alignX = %d, want in {1,2,3}", code, alignX)
		}
	}
}

func TestDecode_Zones(t *testing.T) {
	tests := []struct {
		code int
		zone Zone
	}{
		{0, ZoneOutside},
		{3, ZoneOutside},
		{11, ZoneLeft},
		{22, ZoneCenter},
		{33, ZoneRight},
	}
	for _, tt := range tests {
		if got := Decode(tt.code).Zone; got != tt.zone {
			t.Errorf("Decode(%d).Zone = %v, want %v", tt.code, got, tt.zone)
		}
	}
}

func TestDecode_AlignCodes(t *testing.T) {
	tests := []struct {
		code  int
		align int
	}{
		{0, 11},  // outside: left against top edge
		{11, 13}, // in frame: left, top-anchored
		{22, 23},
		{33, 33},
	}
	for _, tt := range tests {
		if got := Decode(tt.code).Align; got != tt.align {
			t.Errorf("Decode(%d).Align = %d, want %d", tt.code, got, tt.align)
		}
	}
}

func TestDecode_AnchorSlots(t *testing.T) {
	tests := []struct {
		code   int
		anchor Zone
	}{
		{11, ZoneLeft},
		{22, ZoneCenter},
		{33, ZoneRight},
		{0, ZoneLeft},
	}
	for _, tt := range tests {
		if got := Decode(tt.code).Anchor; got != tt.anchor {
			t.Errorf("Decode(%d).Anchor = %v, want %v", tt.code, got, tt.anchor)
		}
	}
}
