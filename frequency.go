package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of every Symbol in an input.
// Symbols that never occur have a count of 0.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies builds the FrequencyTable for data.  Every byte is counted
// exactly once, including 0x00 and bytes above 0x7f.
func CountFrequencies(data []byte) (FrequencyTable, error) {
	var freq FrequencyTable
	if len(data) == 0 {
		return freq, ErrEmptyInput
	}
	for _, b := range data {
		freq[b]++
	}
	return freq, nil
}

// ReadFrequencies reads r to EOF and returns both the FrequencyTable and the
// buffered contents, which the encoder needs for its second pass.
func ReadFrequencies(r io.Reader) (FrequencyTable, []byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return FrequencyTable{}, nil, fmt.Errorf("huffpack: reading input: %w", err)
	}
	data := buf.Bytes()
	freq, err := CountFrequencies(data)
	if err != nil {
		return freq, nil, err
	}
	return freq, data, nil
}

// Distinct returns the number of symbols with a non-zero count.
func (freq *FrequencyTable) Distinct() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum += count
	}
	return sum
}
