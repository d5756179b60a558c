package huffpack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	plainExt      = ".txt"
	compressedExt = ".ltxt"
	fallbackExt   = ".out"
)

// DefaultCompressedName returns the artifact path used when the caller does
// not name one: a trailing ".txt" becomes ".ltxt", anything else gets ".ltxt"
// appended.
func DefaultCompressedName(src string) string {
	if strings.HasSuffix(src, plainExt) {
		return strings.TrimSuffix(src, plainExt) + compressedExt
	}
	return src + compressedExt
}

// DefaultDecompressedName is the inverse of DefaultCompressedName.  Paths
// that do not end in ".ltxt" get ".out" appended.
func DefaultDecompressedName(src string) string {
	if strings.HasSuffix(src, compressedExt) {
		return strings.TrimSuffix(src, compressedExt) + plainExt
	}
	return src + fallbackExt
}

// CompressFile compresses the file at src into a new artifact at dst.
//
// It fails with ErrSourceNotFound if src does not exist.  On any failure no
// file is left at dst; an existing file at dst is only replaced once the new
// artifact is complete.
//
func CompressFile(src, dst string) (Stats, error) {
	data, err := readSource(src)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	err = writeAtomic(dst, func(w io.Writer) error {
		var err error
		stats, err = Compress(w, data)
		return err
	})
	if err != nil {
		return stats, err
	}
	log.Infof("compressed %s -> %s (%d -> %d bytes)", src, dst, stats.RawBytes, stats.PackedBytes)
	return stats, nil
}

// DecompressFile expands the artifact at src into dst.  If dst is an existing
// directory, the output is placed inside it under DefaultDecompressedName.
// Failure handling is the same as for CompressFile.
func DecompressFile(src, dst string) (Stats, error) {
	artifact, err := readSource(src)
	if err != nil {
		return Stats{}, err
	}

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = filepath.Join(dst, DefaultDecompressedName(filepath.Base(src)))
	}

	var stats Stats
	err = writeAtomic(dst, func(w io.Writer) error {
		var err error
		stats, err = DecompressBytes(w, artifact)
		return err
	})
	if err != nil {
		return stats, err
	}
	log.Infof("decompressed %s -> %s (%d -> %d bytes)", src, dst, stats.PackedBytes, stats.RawBytes)
	return stats, nil
}

func readSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}
	return io.ReadAll(f)
}

// writeAtomic runs fn against a temporary file next to dst and renames it
// over dst only if every step succeeds.
func writeAtomic(dst string, fn func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = fn(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, dst)
}
