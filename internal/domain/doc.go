// Package domain contains the core PNG chunk model for pngcoder.
//
// The domain is I/O-agnostic: it parses and serializes in-memory byte buffers
// and does not depend on the filesystem, YAML parsing, or terminal rendering.
// Infra/adapters map into/from these types.
package domain
