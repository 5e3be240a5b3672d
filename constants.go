package numeric

import "sort"

//go:generate go run scripts/constants/codegen.go

// Lookup returns the named fraction, such as [Half] or [BasisPoint].
// The name is case-insensitive and hyphens, underscores and spaces are ignored,
// so "basis-point", "BASIS_POINT" and "BasisPoint" are equivalent.
func Lookup(name string) (Fraction, bool) {
	f, ok := constLookup[foldName(name)]
	return f, ok
}

// ConstantNames returns the folded names accepted by [Lookup] in sorted order.
func ConstantNames() []string {
	names := make([]string, 0, len(constLookup))
	for name := range constLookup {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
