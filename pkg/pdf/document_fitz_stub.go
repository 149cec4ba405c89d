//go:build !cgo

package pdf

// OpenWithFitz is the stub used when cgo is disabled. MuPDF is a C library,
// so it always returns ErrNotCompiled.
//
// To enable MuPDF, rebuild with cgo:
//
//	CGO_ENABLED=1 go build ./...
func OpenWithFitz(filepath string) (Document, error) {
	return nil, ErrNotCompiled
}
