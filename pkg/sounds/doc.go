// ABOUTME: Sound library package
// ABOUTME: Declarative recipes for the game's procedural sound effects
// Package sounds describes sound effects as recipes and renders them.
//
// A Recipe lists sine layers, a duration and optional post-processing:
//   - Envelope: proportional ADSR shaping
//   - NormalizePeak: scale so the loudest sample hits this magnitude
//
// Three recipes ship built in: footstep, interact and ambient.
//
// Example:
//
//	r, _ := sounds.Lookup("footstep")
//	buf, err := sounds.Render(r, audio.DefaultSampleRate)
//	path, err := sounds.Write("resources", r, audio.DefaultSampleRate)
package sounds
