// Command huffpack compresses and decompresses single files with a Huffman
// code.
//
//	huffpack [-c] [-o OUTPUT] [-p] [-verify] INPUT
//	huffpack -d [-o OUTPUT] [-p] INPUT
//	huffpack [-i]
//
// With no INPUT, or with -i, huffpack asks for a command character ("c" or
// "d") and the paths on standard input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack"
)

const progName = "huffpack"

const usageMessage = `Usage: huffpack [-c] [-o OUTPUT] [-p] [-verify] INPUT
       huffpack -d [-o OUTPUT] [-p] INPUT
       huffpack [-i]

  -c        compress INPUT (default); OUTPUT defaults to INPUT with .txt
            replaced by .ltxt
  -d        decompress INPUT; OUTPUT may be a directory
  -o PATH   write the result to PATH
  -p        print the code table of the artifact
  -verify   after compressing, expand the artifact and compare digests
  -i        interactive mode
  -debug    enable debug logging
`

var log = logging.MustGetLogger("huffpack/cli")

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-14s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...interface{}) error {
	return usageError{fmt.Sprintf(format, args...)}
}

type options struct {
	compress    bool
	decompress  bool
	output      string
	printCodes  bool
	verify      bool
	interactive bool
	debug       bool
}

func parseFlags(args []string) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.compress, "c", false, "")
	fs.BoolVar(&opts.decompress, "d", false, "")
	fs.StringVar(&opts.output, "o", "", "")
	fs.BoolVar(&opts.printCodes, "p", false, "")
	fs.BoolVar(&opts.verify, "verify", false, "")
	fs.BoolVar(&opts.interactive, "i", false, "")
	fs.BoolVar(&opts.debug, "debug", false, "")

	if err := fs.Parse(args); err != nil {
		return opts, nil, usageErrorf("%v", err)
	}
	if opts.compress && opts.decompress {
		return opts, nil, usageErrorf("-c and -d are mutually exclusive")
	}
	if fs.NArg() > 1 {
		return opts, nil, usageErrorf("expected one INPUT, got %d", fs.NArg())
	}
	return opts, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, rest, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.debug && leveledLogBackend != nil {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	d := &driver{opts: opts, stdout: stdout}
	if opts.interactive || len(rest) == 0 {
		if opts.compress || opts.decompress || opts.output != "" {
			return usageErrorf("-c, -d and -o need an INPUT")
		}
		return d.interactive(stdin)
	}

	ev := CompressRequested
	if opts.decompress {
		ev = DecompressRequested
	}
	return d.runOnce(ev, rest[0], opts.output)
}

// driver performs the work for each State, leaving the choice of the next
// State to Transition.
type driver struct {
	opts   options
	stdout io.Writer
	state  State
}

func (d *driver) fire(ev Event) error {
	next, err := Transition(d.state, ev)
	if err != nil {
		return err
	}
	log.Debugf("%v --%v--> %v", d.state, ev, next)
	d.state = next
	return nil
}

func (d *driver) runOnce(ev Event, src, dst string) error {
	if err := d.fire(ev); err != nil {
		return err
	}

	var err error
	switch d.state {
	case Compressing:
		err = d.compress(src, dst)
	case Decompressing:
		err = d.decompress(src, dst)
	}
	if err != nil {
		return err
	}
	return d.fire(Finished)
}

func (d *driver) interactive(stdin io.Reader) error {
	sc := bufio.NewScanner(stdin)
	prompt := func(question string) (string, error) {
		fmt.Fprint(d.stdout, question)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	line, err := prompt("command (c = compress, d = decompress): ")
	if err != nil {
		return err
	}
	ev, err := ParseCommand(line)
	if err != nil {
		return err
	}

	var src, dst string
	switch ev {
	case CompressRequested:
		if src, err = prompt("file to compress: "); err != nil {
			return err
		}
	case DecompressRequested:
		if src, err = prompt("compressed file: "); err != nil {
			return err
		}
		if dst, err = prompt("save to (file or directory): "); err != nil {
			return err
		}
	}
	if src == "" {
		return usageErrorf("no input path given")
	}
	return d.runOnce(ev, src, dst)
}

func (d *driver) compress(src, dst string) error {
	if dst == "" {
		dst = huffpack.DefaultCompressedName(src)
	}

	stats, err := huffpack.CompressFile(src, dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.stdout, "%s: %s\n", dst, stats)

	if d.opts.printCodes {
		if err := printCodes(d.stdout, dst); err != nil {
			return err
		}
	}
	if d.opts.verify {
		return verifyArtifact(dst, stats.Digest)
	}
	return nil
}

func (d *driver) decompress(src, dst string) error {
	if dst == "" {
		dst = huffpack.DefaultDecompressedName(src)
	}

	if d.opts.printCodes {
		if err := printCodes(d.stdout, src); err != nil {
			return err
		}
	}

	stats, err := huffpack.DecompressFile(src, dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.stdout, "%s: %s\n", src, stats)
	return nil
}

// printCodes dumps the code table stored in the artifact at path, followed by
// the decoding tree rebuilt from it.
func printCodes(w io.Writer, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", huffpack.ErrSourceNotFound, path)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	hdr, err := huffpack.ReadHeader(bufio.NewReader(f))
	if err != nil {
		return err
	}
	if _, err := hdr.Codes.Dump(w); err != nil {
		return err
	}
	trie, err := hdr.Codes.Trie()
	if err != nil {
		return err
	}
	_, err = trie.Dump(w)
	return err
}

// verifyArtifact expands the artifact at path and checks that the output
// hashes to digest.
func verifyArtifact(path string, digest uint64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := huffpack.Decompress(h, f); err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	if sum := h.Sum64(); sum != digest {
		return fmt.Errorf("verify %s: digest mismatch: got %016x, want %016x", path, sum, digest)
	}
	log.Infof("verified %s (xxhash %016x)", path, digest)
	return nil
}

func main() {
	startLogging()

	err := run(os.Args[1:], os.Stdin, os.Stdout)
	var uerr usageError
	switch {
	case err == nil:
		return
	case errors.As(err, &uerr):
		fmt.Fprintf(os.Stderr, "%s: %v\n%s", progName, err, usageMessage)
		os.Exit(2)
	default:
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
