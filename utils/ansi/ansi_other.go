//go:build !windows

package ansi

// EnableANSI is a no-op on non-Windows; the banner's escape sequences are
// supported by default.
func EnableANSI() {
}
