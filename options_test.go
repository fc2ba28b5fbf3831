package logo

import "testing"

func TestDefaultOptions(t *testing.T) {
	if defaultOptions().antialias {
		t.Error("antialias enabled by default, want hard edges")
	}
}

func TestWithAntialias(t *testing.T) {
	tests := []struct {
		name string
		opts []CanvasOption
		want bool
	}{
		{"none", nil, false},
		{"enabled", []CanvasOption{WithAntialias(true)}, true},
		{"disabled", []CanvasOption{WithAntialias(false)}, false},
		{"last wins", []CanvasOption{WithAntialias(true), WithAntialias(false)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 4, 4, tt.opts...)
			if c.opts.antialias != tt.want {
				t.Errorf("antialias = %v, want %v", c.opts.antialias, tt.want)
			}
		})
	}
}
