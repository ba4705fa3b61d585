// Package district holds the fixed catalog of Sri Lanka's 25
// administrative districts, the primary scoping dimension for both
// authorization and reporting.
package district

// All is the catalog of valid district names, in display order.
var All = []string{
	"Ampara", "Anuradhapura", "Badulla", "Batticaloa", "Colombo",
	"Galle", "Gampaha", "Hambantota", "Jaffna", "Kalutara",
	"Kandy", "Kegalle", "Kilinochchi", "Kurunegala", "Mannar",
	"Matale", "Matara", "Monaragala", "Mullaitivu", "Nuwara Eliya",
	"Polonnaruwa", "Puttalam", "Ratnapura", "Trincomalee", "Vavuniya",
}

var index = func() map[string]struct{} {
	m := make(map[string]struct{}, len(All))
	for _, d := range All {
		m[d] = struct{}{}
	}
	return m
}()

// Valid reports whether name is one of the catalog districts.
func Valid(name string) bool {
	_, ok := index[name]
	return ok
}

// Names returns a copy of the catalog so callers can't mutate it.
func Names() []string {
	out := make([]string, len(All))
	copy(out, All)
	return out
}
