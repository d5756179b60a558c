package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	type testRow struct {
		from   State
		ev     Event
		to     State
		failed bool
	}

	testData := [...]testRow{
		{from: Idle, ev: CompressRequested, to: Compressing},
		{from: Idle, ev: DecompressRequested, to: Decompressing},
		{from: Idle, ev: Finished, to: Idle, failed: true},
		{from: Compressing, ev: Finished, to: Done},
		{from: Decompressing, ev: Finished, to: Done},
		{from: Compressing, ev: DecompressRequested, to: Compressing, failed: true},
		{from: Decompressing, ev: CompressRequested, to: Decompressing, failed: true},
		{from: Done, ev: CompressRequested, to: Done, failed: true},
		{from: Done, ev: Finished, to: Done, failed: true},
	}
	for _, row := range testData {
		t.Run(row.from.String()+"/"+row.ev.String(), func(t *testing.T) {
			to, err := Transition(row.from, row.ev)
			if row.failed {
				require.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, row.to, to)
		})
	}
}

func TestParseCommand(t *testing.T) {
	ev, err := ParseCommand("c")
	require.NoError(t, err)
	require.Equal(t, CompressRequested, ev)

	ev, err = ParseCommand(" d\n")
	require.NoError(t, err)
	require.Equal(t, DecompressRequested, ev)

	for _, line := range []string{"", "x", "cd", "C"} {
		_, err = ParseCommand(line)
		require.ErrorIs(t, err, ErrInvalidOption, "line %q", line)
	}
}

func TestStateString(t *testing.T) {
	require.Equal(t, "Idle", Idle.String())
	require.Equal(t, "Done", Done.String())
	require.Equal(t, "State(9)", State(9).String())
	require.Equal(t, "Finished", Finished.String())
	require.Equal(t, "Event(-1)", Event(-1).String())
}
