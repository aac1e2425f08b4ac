package common

// WipeByteArray zeroes b in place. It is nil-safe.
func WipeByteArray(b []byte) {
	clear(b)
}
