// Command atsparse is a thin demonstration CLI over the family parsers.
// It reads one message per line from a file (or stdin), parses each line
// using the family selected with -family, and prints the result as JSON.
//
// It is an external collaborator: nothing under internal/ imports it.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"atsparse/internal/adexp"
	"atsparse/internal/aftn"
	"atsparse/internal/nmea"
	"atsparse/internal/record"
	"atsparse/internal/sbs"
)

type lineParser func(line string) (record.Recorder, error)

func parsers(nmeaParser *nmea.Parser) map[string]lineParser {
	return map[string]lineParser{
		"aftn": func(line string) (record.Recorder, error) {
			return aftn.Parse(line)
		},
		"adexp": func(line string) (record.Recorder, error) {
			return adexp.Parse(line)
		},
		"nmea": func(line string) (record.Recorder, error) {
			return nmeaParser.Parse(line)
		},
		"sbs": func(line string) (record.Recorder, error) {
			return sbs.Parse(line)
		},
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "atsparse - commands:")
	fmt.Fprintln(w, "  extract  - parse a file of messages and print JSON records")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  atsparse extract -family {aftn|adexp|nmea|sbs} [-input FILE] [-pretty]")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	switch strings.ToLower(os.Args[1]) {
	case "extract":
		runExtract(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}
}

func runExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	family := fs.String("family", "", "message family: aftn, adexp, nmea, or sbs")
	inPath := fs.String("input", "", "input file, one message per line (default: stdin)")
	pretty := fs.Bool("pretty", false, "pretty-print JSON output")
	_ = fs.Parse(args)

	formatter := log.LogfmtFormatter
	if isatty.IsTerminal(os.Stderr.Fd()) {
		formatter = log.TextFormatter
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Formatter:       formatter,
	})

	nmeaParser := nmea.NewParser()
	parse, ok := parsers(nmeaParser)[strings.ToLower(*family)]
	if !ok {
		logger.Fatal("unknown or missing -family", "family", *family)
	}

	var r io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			logger.Fatal("failed to open input", "err", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []record.Record
	var totalBytes int
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		totalBytes += len(line)

		msg, err := parse(line)
		if err != nil {
			logger.Warn("failed to parse line", "line", lineNum, "err", err)
			continue
		}
		out = append(out, msg.ToRecord())
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("input read error", "err", err)
	}

	enc, err := marshal(out, *pretty)
	if err != nil {
		logger.Fatal("JSON encode error", "err", err)
	}
	os.Stdout.Write(enc)
	os.Stdout.Write([]byte("\n"))

	logger.Info("extract complete",
		"lines", lineNum,
		"records", len(out),
		"input", humanize.Bytes(uint64(totalBytes)),
	)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
