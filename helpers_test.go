package imgproc

import "testing"

// Test helper functions shared across imgproc tests.

// newTestBuffer creates a buffer with every sample set to v.
func newTestBuffer(t testing.TB, w, h, channels int, v float32) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h, channels)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d, %d) = %v", w, h, channels, err)
	}
	b.Fill(v)
	return b
}

// newRampBuffer creates a single-channel buffer where sample (x, y) = x + y*w.
func newRampBuffer(t testing.TB, w, h int) *Buffer {
	t.Helper()
	b := newTestBuffer(t, w, h, 1, 0)
	for y := range h {
		for x := range w {
			b.SetValue(x, y, 0, float32(x+y*w))
		}
	}
	return b
}

// approxEqual compares two floats with tolerance.
func approxEqual(a, b, tolerance float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// expectPanic fails the test if f does not panic.
func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}
