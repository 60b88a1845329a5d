// ABOUTME: Built-in recipe library
// ABOUTME: Footstep, ambient and interact sounds plus lookup and merge helpers
package sounds

import "github.com/shadow-worker/soundgen/pkg/audio/synth"

// Builtin returns fresh copies of the built-in recipes
func Builtin() []Recipe {
	return []Recipe{
		{
			// Short low thud with a quieter overtone
			Name:     "footstep",
			Path:     "sounds/footstep.wav",
			Duration: 0.15,
			Layers: []Layer{
				{Frequency: 100, Amplitude: 0.5},
				{Frequency: 400, Amplitude: 0.2},
			},
			Envelope: &synth.ADSR{Attack: 0.1, Decay: 0.3, Sustain: 0.4, Release: 0.2},
		},
		{
			// Long low drone of four harmonics
			Name:     "ambient",
			Path:     "sounds/ambient.wav",
			Duration: 5.0,
			Layers: []Layer{
				{Frequency: 50, Amplitude: 0.3},
				{Frequency: 100, Amplitude: 0.2},
				{Frequency: 150, Amplitude: 0.15},
				{Frequency: 200, Amplitude: 0.1},
			},
			NormalizePeak: 0.7,
		},
		{
			// A4 beep with its octave
			Name:     "interact",
			Path:     "sounds/interact.wav",
			Duration: 0.2,
			Layers: []Layer{
				{Frequency: 440, Amplitude: 0.3},
				{Frequency: 880, Amplitude: 0.15},
			},
			Envelope: &synth.ADSR{Attack: 0.05, Decay: 0.1, Sustain: 0.7, Release: 0.15},
		},
	}
}

// Lookup returns the built-in recipe with the given name
func Lookup(name string) (Recipe, bool) {
	return Find(Builtin(), name)
}

// Find returns the recipe with the given name from recipes
func Find(recipes []Recipe, name string) (Recipe, bool) {
	for _, r := range recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}

// Merge overlays extra onto base. A recipe in extra replaces the base
// recipe of the same name in place; new names are appended in order.
func Merge(base, extra []Recipe) []Recipe {
	out := append([]Recipe(nil), base...)
	index := make(map[string]int, len(out))
	for i, r := range out {
		index[r.Name] = i
	}
	for _, r := range extra {
		if i, ok := index[r.Name]; ok {
			out[i] = r
			continue
		}
		index[r.Name] = len(out)
		out = append(out, r)
	}
	return out
}
