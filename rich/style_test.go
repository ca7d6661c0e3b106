package rich

import (
	"image/color"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	style := DefaultStyle()

	if style.Scale != 1.0 {
		t.Errorf("DefaultStyle().Scale = %v, want 1.0", style.Scale)
	}
	if style.Bold || style.Italic {
		t.Errorf("DefaultStyle() = %+v, want neither bold nor italic", style)
	}
	if style.Fg != nil || style.Bg != nil {
		t.Errorf("DefaultStyle() colors = %v, %v; want nil", style.Fg, style.Bg)
	}
}

func TestStyleEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Style
		equal bool
	}{
		{
			name:  "default styles are equal",
			a:     DefaultStyle(),
			b:     DefaultStyle(),
			equal: true,
		},
		{
			name:  "bold styles are equal",
			a:     StyleBold,
			b:     Style{Bold: true, Scale: 1.0},
			equal: true,
		},
		{
			name:  "bold vs italic are not equal",
			a:     StyleBold,
			b:     StyleItalic,
			equal: false,
		},
		{
			name:  "different scales are not equal",
			a:     StyleH1,
			b:     StyleH2,
			equal: false,
		},
		{
			name:  "code vs plain are not equal",
			a:     StyleCode,
			b:     DefaultStyle(),
			equal: false,
		},
		{
			name:  "same colors of different types are equal",
			a:     Style{Fg: color.Black, Bg: color.White, Scale: 1.0},
			b:     Style{Fg: color.RGBA{A: 255}, Bg: color.Gray{Y: 255}, Scale: 1.0},
			equal: true,
		},
		{
			name:  "different fg colors are not equal",
			a:     Style{Fg: color.Black, Scale: 1.0},
			b:     Style{Fg: color.White, Scale: 1.0},
			equal: false,
		},
		{
			name:  "nil vs set color are not equal",
			a:     StyleLink,
			b:     Style{Link: true, Scale: 1.0},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.b, tt.a, got, tt.equal)
			}
		})
	}
}
