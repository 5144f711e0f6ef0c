package handler

// Allowlist is a frozen set of permitted first-path-segments for one
// proxy route. It is built once at startup and never mutated; membership
// is the only thing standing between this gateway and being an open
// proxy.
type Allowlist map[string]struct{}

// NewAllowlist builds an Allowlist from the given segments.
func NewAllowlist(segments ...string) Allowlist {
	a := make(Allowlist, len(segments))
	for _, s := range segments {
		a[s] = struct{}{}
	}
	return a
}

// Contains reports whether the (already lower-cased) segment is
// permitted.
func (a Allowlist) Contains(segment string) bool {
	_, ok := a[segment]
	return ok
}
