package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huffpack"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_CompressDecompress(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "poem.txt", "tyger tyger burning bright\n")

	var stdout strings.Builder
	require.NoError(t, run([]string{"-verify", src}, strings.NewReader(""), &stdout))
	packed := filepath.Join(dir, "poem.ltxt")
	require.FileExists(t, packed)
	require.Contains(t, stdout.String(), packed+": raw=27 ")

	out := filepath.Join(dir, "copy.txt")
	stdout.Reset()
	require.NoError(t, run([]string{"-d", "-o", out, packed}, strings.NewReader(""), &stdout))
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "tyger tyger burning bright\n", string(content))
}

func TestRun_PrintCodes(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "abc.txt", "aaabbc")

	var stdout strings.Builder
	require.NoError(t, run([]string{"-c", "-p", src}, strings.NewReader(""), &stdout))
	require.Contains(t, stdout.String(), "\tLookup(0x61) = \"0\"\n")
	require.Contains(t, stdout.String(), "\tLookup(0x62) = \"11\"\n")
	require.Contains(t, stdout.String(), "\tLookup(0x63) = \"10\"\n")
	require.Contains(t, stdout.String(), "Tree{\n")
}

func TestRun_Interactive(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, "notes.txt", "interactive\x00mode")

	var stdout strings.Builder
	require.NoError(t, run(nil, strings.NewReader("c\n"+src+"\n"), &stdout))
	require.Contains(t, stdout.String(), "file to compress: ")
	packed := filepath.Join(dir, "notes.ltxt")
	require.FileExists(t, packed)

	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))
	stdout.Reset()
	require.NoError(t, run([]string{"-i"}, strings.NewReader("d\n"+packed+"\n"+outDir+"\n"), &stdout))
	content, err := os.ReadFile(filepath.Join(outDir, "notes.txt"))
	require.NoError(t, err)
	require.Equal(t, "interactive\x00mode", string(content))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := writeInput(t, dir, "empty.txt", "")

	err := run([]string{empty}, strings.NewReader(""), &strings.Builder{})
	require.ErrorIs(t, err, huffpack.ErrEmptyInput)
	require.NoFileExists(t, filepath.Join(dir, "empty.ltxt"))

	err = run([]string{filepath.Join(dir, "nope.txt")}, strings.NewReader(""), &strings.Builder{})
	require.ErrorIs(t, err, huffpack.ErrSourceNotFound)

	err = run(nil, strings.NewReader("x\n"), &strings.Builder{})
	require.ErrorIs(t, err, ErrInvalidOption)

	err = run(nil, strings.NewReader("c\n"), &strings.Builder{})
	require.Error(t, err)

	var uerr usageError
	err = run([]string{"-c", "-d", empty}, strings.NewReader(""), &strings.Builder{})
	require.True(t, errors.As(err, &uerr))

	err = run([]string{"a", "b"}, strings.NewReader(""), &strings.Builder{})
	require.True(t, errors.As(err, &uerr))

	err = run([]string{"-nosuchflag"}, strings.NewReader(""), &strings.Builder{})
	require.True(t, errors.As(err, &uerr))
}
