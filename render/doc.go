// Package render produces the two human-readable text views of a prototype
// grid. Both are pure functions of the grid contents — no algorithmic
// content, no mutation.
//
// What:
//
//   - ComponentPlanes: one aligned table per vector component, H rows by
//     W columns, for eyeballing how each input dimension organized itself.
//   - FlatTSV: a tab-separated dump of (neuron index, x, y, components),
//     one line per cell in enumeration order, suitable for plotting tools.
//
// Errors:
//
//   - ErrNilGrid: a nil grid was passed.
//
// An uninitialized grid renders its zero values; no error is raised.
package render
