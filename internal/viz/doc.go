// Package viz renders cutoff analysis output for the terminal.
//
// The package produces static text only:
//
//   - [Canvas]: Braille-based pixel canvas mapped to data coordinates
//   - [Chart]: potential curve with cutoff guides and markers
//   - [RenderReport]: lipgloss styling over the plain report lines
//
// # Clipping
//
// The potential diverges near r = 0, so charts use a fixed viewport rather
// than autoscaling. [ClampSeries] bounds a series for line charts and
// [Canvas] drops out-of-viewport samples, which is what keeps the well
// visible next to the repulsive wall.
package viz
