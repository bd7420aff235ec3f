// Package viz is the terminal frontend for the orrery.
//
// The scene is projected through orbit-control camera onto a braille
// [Canvas]; the speed panel sits beside it and writes to the shared store.
//
// # Key Bindings
//
//	↑/↓ k/j  - Select body
//	←/→ h/l  - Adjust speed by 0.1
//	0        - Stop the selected body
//	r        - Reset the selected body to its default
//	w/a/s/d  - Orbit the camera
//	+/-      - Zoom
//	t        - Cycle color themes
//	?        - Show help overlay
//	q        - Quit
package viz
