// Package render draws per-trip stop sequences as polylines on a map
// canvas. The core depends only on the Canvas interface; LeafletCanvas is
// the shipped implementation, emitting a self-contained HTML page.
package render
