package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffcode"
)

var log = logging.MustGetLogger("huffcode/cmd")

const progName = "huffcode"
const usageMessageRaw = `
Usage: huffcode [OPTIONS] [TEXT]

Compute Huffman codes for the bytes of TEXT and report the encoded size.
Without TEXT, read one line from standard input.

Options:
  -f FILE, -file FILE
	Analyze the contents of FILE instead of a line of text.
  -t POLICY, -tie POLICY
	Order nodes of equal weight by POLICY: "oldest" (default) or
	"newest".
  -d, -debug
	Enable debug logging.
`

const prompt = "Enter text to compress: "

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

type usageError struct {
	detail string
}

func (e usageError) Error() string {
	return e.detail
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) error {
	return usageError{fmt.Sprintf(detailFmt, detailArgs...)}
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-16s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// readLine reads one line from r, without its trailing line terminator.
func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading standard input")
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}

func writeReport(w io.Writer, r *huffcode.Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Huffman Codes:")
	for _, sym := range r.Codes.Symbols() {
		fmt.Fprintf(bw, "%c: %s\n", byte(sym), string(r.Codes[sym]))
	}
	fmt.Fprintf(bw, "\nOriginal size: %d bits\n", r.UncompressedBits)
	fmt.Fprintf(bw, "Compressed size: %d bits\n", r.CompressedBits)
	return bw.Flush()
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	var fileName string
	var tieName string
	ourFlags.StringVar(&fileName, "file", "", "")
	ourFlags.StringVar(&fileName, "f", "", "")
	ourFlags.StringVar(&tieName, "tie", huffcode.OldestFirst.String(), "")
	ourFlags.StringVar(&tieName, "t", huffcode.OldestFirst.String(), "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(args)
	if argErr == flag.ErrHelp {
		io.WriteString(stdout, usageMessage())
		return nil
	} else if argErr != nil {
		return usageErrorf("%s", argErr.Error())
	}

	if debugLogging && leveledLogBackend != nil {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	tie, err := huffcode.ParseTieBreak(tieName)
	if err != nil {
		return usageErrorf("%s", err.Error())
	}

	if ourFlags.NArg() > 1 {
		return usageErrorf("too many arguments at %d (\"%s\")", 1, ourFlags.Arg(1))
	}

	var data []byte
	switch {
	case fileName != "" && ourFlags.NArg() != 0:
		return usageErrorf("TEXT and -file are mutually exclusive")
	case fileName != "":
		log.Debugf("reading %s", fileName)
		data, err = ioutil.ReadFile(fileName)
		if err != nil {
			return errors.Wrapf(err, "reading %s", fileName)
		}
	case ourFlags.NArg() != 0:
		data = []byte(ourFlags.Arg(0))
	default:
		io.WriteString(stdout, prompt)
		data, err = readLine(stdin)
		if err != nil {
			return err
		}
	}

	report, err := huffcode.Analyze(data, huffcode.Options{TieBreak: tie})
	if err != nil {
		return err
	}
	log.Debugf("compression ratio %.3f", report.Ratio())
	return writeReport(stdout, report)
}

func main() {
	startLogging()

	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if uerr, ok := err.(usageError); ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, uerr.detail, usageMessage())
		os.Exit(64)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
		os.Exit(1)
	}
}
