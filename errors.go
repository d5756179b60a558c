package huffpack

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the input path does not resolve to
	// a file.
	ErrSourceNotFound = errors.New("huffpack: source not found")

	// ErrEmptyInput is returned when asked to compress zero bytes.  Empty
	// inputs have no frequency table and therefore no code.
	ErrEmptyInput = errors.New("huffpack: empty input")

	// ErrMalformedStream is returned when a compressed artifact has an
	// inconsistent header or a bitstream that cannot be decoded.
	ErrMalformedStream = errors.New("huffpack: malformed stream")

	// ErrDegenerateAlphabet is reported, not returned, when the input
	// contains exactly one distinct byte value.  Compression still succeeds
	// with a one-bit code.
	ErrDegenerateAlphabet = errors.New("huffpack: degenerate alphabet")
)

func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedStream, fmt.Sprintf(format, args...))
}
