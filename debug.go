//go:build !govterm_debug

package govterm

// checkInvariants is a no-op in production builds. Build with
// -tags govterm_debug to enable the real checks in
// debug_govterm_debug.go.
func checkInvariants(t *Terminal) {}
