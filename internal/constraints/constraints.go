// Package constraints provides type constraints shared across the module.
package constraints

// Byteseq matches any string-like or byte-slice-like input.
type Byteseq interface {
	~string | ~[]byte
}
