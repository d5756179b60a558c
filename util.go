package huffpack

// packedLen returns the number of bytes needed to hold bits bits.
func packedLen(bits uint64) uint64 {
	return (bits + 7) / 8
}

// paddingFor returns the number of filler bits that complete the last byte
// of a bits-long stream.
func paddingFor(bits uint64) byte {
	return byte((8 - bits%8) % 8)
}
