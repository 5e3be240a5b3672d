package numeric

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want Fraction
		}{
			{"half", Half},
			{"Half", MustNew(1, 2)},
			{"two-thirds", MustNew(2, 3)},
			{"BASIS_POINT", MustNew(1, 10000)},
			{"basis point", BasisPoint},
			{"kibi", MustNew(1024, 1)},
			{"zero", Zero},
		}
		for _, tt := range tests {
			got, ok := Lookup(tt.name)
			if !ok {
				t.Errorf("Lookup(%q) failed", tt.name)
				continue
			}
			if !got.Equal(tt.want) {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, name := range []string{"", "halves", "pi", "1/2"} {
			if _, ok := Lookup(name); ok {
				t.Errorf("Lookup(%q) succeeded", name)
			}
		}
	})
}

func TestConstantNames(t *testing.T) {
	names := ConstantNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("ConstantNames() is not sorted: %v", names)
	}
	for _, name := range names {
		f, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) failed for a listed name", name)
		}
		if name != "zero" && f.IsZero() {
			t.Errorf("Lookup(%q) = 0", name)
		}
	}
}
