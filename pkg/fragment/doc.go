// Package fragment renders the per-attribute text fragments that fill the
// placeholders of generated artifacts: HTL attribute bindings, the slot hint,
// the manual-wiring comment for function-valued attributes, and Granite dialog
// field descriptors.
package fragment
