package numeric

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestMode_ZeroValue(t *testing.T) {
	var m Mode
	if m != HalfUp || m != DefaultMode {
		t.Errorf("Mode zero value = %v, want %v", m, HalfUp)
	}
	if got := len(Modes()); got != 7 {
		t.Errorf("len(Modes()) = %v, want 7", got)
	}
}

func TestParseMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Mode
		}{
			{"half-up", HalfUp},
			{"HALF_UP", HalfUp},
			{"halfDown", HalfDown},
			{"half even", HalfEven},
			{"bankers", HalfEven},
			{" floor ", Floor},
			{"Ceil", Ceil},
			{"ceiling", Ceil},
			{"trunc", Trunc},
			{"truncate", Trunc},
			{"down", Trunc},
			{"UP", Up},
		}
		for _, tt := range tests {
			got, err := ParseMode(tt.s)
			if err != nil {
				t.Errorf("ParseMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
		for _, m := range Modes() {
			got, err := ParseMode(m.String())
			if err != nil || got != m {
				t.Errorf("ParseMode(%q) = %v, %v, want %v", m.String(), got, err, m)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, s := range []string{"", "half", "nearest", "half-odd", "7"} {
			if _, err := ParseMode(s); !errors.Is(err, ErrFormat) {
				t.Errorf("ParseMode(%q) error = %v, want %v", s, err, ErrFormat)
			}
		}
	})
}

func TestMustParseMode(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseMode(\"x\") did not panic")
			}
		}()
		MustParseMode("x")
	})
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{HalfUp, "half-up"},
		{HalfDown, "half-down"},
		{HalfEven, "half-even"},
		{Floor, "floor"},
		{Ceil, "ceil"},
		{Trunc, "trunc"},
		{Up, "up"},
		{Mode(42), "Mode(42)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
		if got := tt.m.IsValid(); got != (tt.m < 7) {
			t.Errorf("Mode(%d).IsValid() = %v", uint8(tt.m), got)
		}
	}
}

func TestMode_Format(t *testing.T) {
	tests := []struct {
		m      Mode
		format string
		want   string
	}{
		{HalfEven, "%v", "half-even"},
		{HalfEven, "%s", "half-even"},
		{HalfEven, "%q", `"half-even"`},
		{Up, "%5v", "   up"},
		{Up, "%-5v|", "up   |"},
		{Up, "%d", "%!d(numeric.Mode=up)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.m); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, uint8(tt.m), got, tt.want)
		}
	}
}

func TestMode_JSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, m := range Modes() {
			data, err := json.Marshal(m)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", m, err)
				continue
			}
			var got Mode
			if err := json.Unmarshal(data, &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
				continue
			}
			if got != m {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", data, got, m)
			}
		}
		var got struct{ Mode Mode }
		if err := json.Unmarshal([]byte(`{"Mode":"bankers"}`), &got); err != nil || got.Mode != HalfEven {
			t.Errorf("json.Unmarshal(bankers) = %v, %v, want %v", got.Mode, err, HalfEven)
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := json.Marshal(Mode(9)); err == nil {
			t.Errorf("json.Marshal(Mode(9)) did not fail")
		}
		if _, err := Mode(9).MarshalJSON(); !errors.Is(err, ErrFormat) {
			t.Errorf("Mode(9).MarshalJSON() error = %v, want %v", err, ErrFormat)
		}
		var got Mode
		if err := json.Unmarshal([]byte(`"nearest"`), &got); err == nil {
			t.Errorf("json.Unmarshal(nearest) did not fail")
		}
		if err := got.UnmarshalJSON([]byte(`"nearest"`)); !errors.Is(err, ErrFormat) {
			t.Errorf("UnmarshalJSON(nearest) error = %v, want %v", err, ErrFormat)
		}
	})
}

func TestMode_Text(t *testing.T) {
	text, err := Floor.MarshalText()
	if err != nil || string(text) != "floor" {
		t.Fatalf("Floor.MarshalText() = %s, %v, want floor", text, err)
	}
	var got Mode
	if err := got.UnmarshalText([]byte("CEILING")); err != nil || got != Ceil {
		t.Errorf("UnmarshalText(CEILING) = %v, %v, want %v", got, err, Ceil)
	}
	if _, err := Mode(9).MarshalText(); !errors.Is(err, ErrFormat) {
		t.Errorf("Mode(9).MarshalText() error = %v, want %v", err, ErrFormat)
	}
	if err := got.UnmarshalText([]byte("half")); !errors.Is(err, ErrFormat) {
		t.Errorf("UnmarshalText(half) error = %v, want %v", err, ErrFormat)
	}
}

func TestMode_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got Mode
		if err := got.Scan("half-down"); err != nil || got != HalfDown {
			t.Errorf("Scan(half-down) = %v, %v, want %v", got, err, HalfDown)
		}
		if err := got.Scan([]byte("up")); err != nil || got != Up {
			t.Errorf("Scan(up) = %v, %v, want %v", got, err, Up)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			value any
			want  error
		}{
			{nil, ErrInvalidArgument},
			{int64(1), ErrInvalidArgument},
			{"x", ErrFormat},
			{[]byte("nearest"), ErrFormat},
		}
		for _, tt := range tests {
			var got Mode
			if err := got.Scan(tt.value); !errors.Is(err, tt.want) {
				t.Errorf("Scan(%v) error = %v, want %v", tt.value, err, tt.want)
			}
		}
	})
}

func TestMode_Value(t *testing.T) {
	got, err := Trunc.Value()
	if err != nil || got != "trunc" {
		t.Errorf("Trunc.Value() = %v, %v, want trunc", got, err)
	}
	if _, err := Mode(9).Value(); !errors.Is(err, ErrFormat) {
		t.Errorf("Mode(9).Value() error = %v, want %v", err, ErrFormat)
	}
}
