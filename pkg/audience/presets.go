// Package audience provides the built-in audience universe presets.
//
// Presets are planning shortcuts for common Benelux buying audiences. A
// selection of several presets is summed into one universe size; the Custom
// preset stands alone and keeps whatever size the planner typed in.
package audience

// CustomKey identifies the free-form preset whose size the caller controls.
const CustomKey = "Custom"

// Preset is a named audience universe.
type Preset struct {
	Key   string
	Label string
	Size  float64
}

var presets = []Preset{
	{Key: CustomKey, Label: "Custom", Size: 5000000},
	{Key: "BE_18P", Label: "Belgique 18+", Size: 8900000},
	{Key: "BE_18_54_FR", Label: "Belgique FR 18-54", Size: 3100000},
	{Key: "BE_18_54_NL", Label: "Belgique NL 18-54", Size: 2400000},
	{Key: "NL_18_54", Label: "Pays Bas 18-54", Size: 7200000},
	{Key: "LU_18_54", Label: "Luxembourg 18-54", Size: 350000},
	{Key: "BENELUX_18_54", Label: "BENELUX 18-54", Size: 13050000},
	{Key: "BE_18_54_CTV", Label: "Belgique 18-54 CTV only", Size: 3000000},
	{Key: "BE_18_54_Mobile", Label: "Belgique 18-54 Mobile only", Size: 4500000},
}

// Presets returns the ordered preset table.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the preset for a key.
func Lookup(key string) (Preset, bool) {
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve turns a preset selection into a single universe size. Unknown keys
// are dropped. A selection that mixes Custom with other presets collapses to
// Custom alone, and a Custom-only selection reports ok=false so the caller
// keeps its own size. Multiple concrete presets sum their sizes.
func Resolve(keys []string) (float64, bool) {
	var known []Preset
	custom := false
	for _, key := range keys {
		p, ok := Lookup(key)
		if !ok {
			continue
		}
		if p.Key == CustomKey {
			custom = true
			continue
		}
		known = append(known, p)
	}
	if custom || len(known) == 0 {
		return 0, false
	}
	total := 0.0
	for _, p := range known {
		total += p.Size
	}
	return total, true
}
