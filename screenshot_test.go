package coffee

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	var q screenshotQueue
	q.push("a")
	q.push("b")
	q.push("c")
	got := q.take()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", got)
	}
	if len(q.take()) != 0 {
		t.Error("take should empty the queue")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 0, 0, 128, // half transparent red
		0, 0, 0, 0,
	}
	img := unpremultiply(pixels, 3, 1)
	tests := []struct {
		x          int
		r, g, b, a uint8
	}{
		{0, 255, 0, 0, 255},
		{1, 127, 0, 0, 128},
		{2, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		c := img.NRGBAAt(tt.x, 0)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
			t.Errorf("pixel %d = %v", tt.x, c)
		}
	}
}
