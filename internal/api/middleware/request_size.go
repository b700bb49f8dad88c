package middleware

import "net/http"

const (
	// DefaultMaxBodySize caps JSON request bodies at 1MB.
	DefaultMaxBodySize int64 = 1 << 20

	// UploadMaxBodySize allows the 5MB image limit plus multipart framing
	// overhead.
	UploadMaxBodySize int64 = 5<<20 + 64<<10
)

// RequestSize wraps the body with http.MaxBytesReader so oversized payloads
// fail with 413 instead of being buffered.
func RequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
