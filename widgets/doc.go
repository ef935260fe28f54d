// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (box chrome, lists, vertical stacks)
//
// Not allowed here:
// - key handling, page lifecycle, or navigation
package widgets
