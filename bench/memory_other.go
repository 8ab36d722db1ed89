//go:build !unix

package bench

// peakRSS is unavailable without getrusage.
func peakRSS() (uint64, bool) {
	return 0, false
}
