package numeric

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		g, err := NewGrid(MustParse("1/8"))
		if err != nil {
			t.Fatalf("NewGrid(1/8) failed: %v", err)
		}
		if want := MustNew(1, 8); !g.Increment().Equal(want) {
			t.Errorf("NewGrid(1/8).Increment() = %q, want %q", g.Increment(), want)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewGrid(Zero)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewGrid(0) error = %v, want %v", err, ErrInvalidArgument)
		}
	})
}

func TestParseGrid(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{"1/4", "1/4"},
			{"0.05", "1/20"},
			{"2 1/2", "5/2"},
			{"-1/3", "-1/3"},
		}
		for _, tt := range tests {
			g, err := ParseGrid(tt.s)
			if err != nil {
				t.Errorf("ParseGrid(%q) failed: %v", tt.s, err)
				continue
			}
			if got := g.String(); got != tt.want {
				t.Errorf("ParseGrid(%q) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"zero 1":   {"0", ErrInvalidArgument},
			"zero 2":   {"0/7", ErrInvalidArgument},
			"format 1": {"x", ErrFormat},
			"format 2": {"1/0", ErrFormat},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseGrid(tt.s)
				if !errors.Is(err, tt.want) {
					t.Errorf("ParseGrid(%q) error = %v, want %v", tt.s, err, tt.want)
				}
			})
		}
	})
}

func TestMustParseGrid(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseGrid(\"0\") did not panic")
			}
		}()
		MustParseGrid("0")
	})
}

func TestGrid_Round(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			g    Grid
			f    string
			mode Mode
			want string
		}{
			{Quarters, "7.375", HalfUp, "7.5"},
			{Quarters, "7.375", HalfDown, "7.25"},
			{Halves, "1.3", HalfUp, "1.5"},
			{Thirds, "0.5", Up, "2/3"},
			{Cents, "10.005", HalfUp, "10.01"},
			{MustParseGrid("5"), "12.5", HalfDown, "10"},
		}
		for _, tt := range tests {
			f := MustParse(tt.f)
			got, err := tt.g.Round(f, tt.mode)
			if err != nil {
				t.Errorf("Grid(%v).Round(%q, %v) failed: %v", tt.g, f, tt.mode, err)
				continue
			}
			if want := MustParse(tt.want); !got.Equal(want) {
				t.Errorf("Grid(%v).Round(%q, %v) = %q, want %q", tt.g, f, tt.mode, got, want)
			}
			if !tt.g.Contains(got) {
				t.Errorf("Grid(%v) does not contain its own rounding result %q", tt.g, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := Quarters.Round(One, HalfEven); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Quarters.Round(1, half-even) error = %v, want %v", err, ErrInvalidArgument)
		}
		if _, err := (Grid{}).Round(One, HalfUp); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Grid{}.Round(1, half-up) error = %v, want %v", err, ErrInvalidArgument)
		}
	})
}

func TestGrid_Contains(t *testing.T) {
	tests := []struct {
		g    Grid
		f    string
		want bool
	}{
		{Quarters, "0", true},
		{Quarters, "7/4", true},
		{Quarters, "-3", true},
		{Quarters, "1/8", false},
		{Thirds, "2/3", true},
		{Thirds, "1/2", false},
		{Cents, "1.23", true},
		{Cents, "1.234", false},
		{MustParseGrid("-1/2"), "3/2", true},
		{Grid{}, "0", false},
	}
	for _, tt := range tests {
		f := MustParse(tt.f)
		if got := tt.g.Contains(f); got != tt.want {
			t.Errorf("Grid(%v).Contains(%q) = %v, want %v", tt.g, f, got, tt.want)
		}
	}
}
