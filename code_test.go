package huffpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_ParseAndString(t *testing.T) {
	type testRow struct {
		input  string
		size   byte
		expect string
	}

	testData := [...]testRow{
		{input: "0", size: 1, expect: "\"0\""},
		{input: "1", size: 1, expect: "\"1\""},
		{input: "0110", size: 4, expect: "\"0110\""},
		{input: "", size: 0, expect: "\"\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			require.NoError(t, err)
			if hc.Size != row.size {
				t.Errorf("expected size %d, got %d", row.size, hc.Size)
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_Bits(t *testing.T) {
	hc := MustParseCode("0110")
	require.Equal(t, uint64(0x6), hc.Bits[0])
	require.Equal(t, []uint{0, 1, 1, 0}, []uint{hc.Bit(0), hc.Bit(1), hc.Bit(2), hc.Bit(3)})

	require.Equal(t, MustParseCode("01101"), hc.Append(1))
	require.Equal(t, MustParseCode("0"), MakeCode(0))
	require.Equal(t, MustParseCode("1"), MakeCode(1))
}

func TestCode_Long(t *testing.T) {
	digits := strings.Repeat("1", MaxCodeSize-1) + "0"
	hc, err := ParseCode(digits)
	require.NoError(t, err)
	require.Equal(t, byte(MaxCodeSize), hc.Size)
	require.Equal(t, uint(1), hc.Bit(200))
	require.Equal(t, uint(0), hc.Bit(MaxCodeSize-1))
	require.Equal(t, digits, hc.Digits())

	_, err = ParseCode(digits + "1")
	require.Error(t, err)
}

func TestCode_ParseInvalid(t *testing.T) {
	_, err := ParseCode("01a")
	require.Error(t, err)
	require.Panics(t, func() { MustParseCode("2") })
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MustParseCode("1011")
	require.True(t, hc.HasPrefix(Code{}))
	require.True(t, hc.HasPrefix(MustParseCode("1")))
	require.True(t, hc.HasPrefix(MustParseCode("101")))
	require.True(t, hc.HasPrefix(hc))
	require.False(t, hc.HasPrefix(MustParseCode("11")))
	require.False(t, hc.HasPrefix(MustParseCode("10110")))
}
