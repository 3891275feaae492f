// Package manifest exposes the public contracts for reading a custom-elements
// manifest: where it comes from (Source), the raw payload (Document), the
// loader and parser stages, and the immutable element descriptors the
// generator consumes. Implementations live under internal/manifest.
package manifest
