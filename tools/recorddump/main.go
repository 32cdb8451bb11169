// Command recorddump reads parsed NMEA sentences or SBS records, one per
// line, and writes them out as an NDJSON stream of interchange records or,
// for entries carrying a position, a GeoJSON FeatureCollection suitable for
// external mapping tools.
//
// This is an external collaborator: it consumes the library's public
// ToRecord() facade and is never imported by internal/.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"atsparse/internal/nmea"
	"atsparse/internal/record"
	"atsparse/internal/sbs"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "recorddump - commands:")
	fmt.Fprintln(w, "  ndjson   - dump parsed records as newline-delimited JSON")
	fmt.Fprintln(w, "  geojson  - dump parsed positions as a GeoJSON FeatureCollection")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  recorddump {ndjson|geojson} -family {nmea|sbs} [-input FILE] [-output FILE] [-gzip]")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	switch strings.ToLower(os.Args[1]) {
	case "ndjson":
		run(os.Args[2:], dumpNDJSON)
	case "geojson":
		run(os.Args[2:], dumpGeoJSON)
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}
}

type dumpFunc func(records []record.Record, w io.Writer, runID uuid.UUID) error

func run(args []string, dump dumpFunc) {
	fs := flag.NewFlagSet("recorddump", flag.ExitOnError)
	family := fs.String("family", "", "message family: nmea or sbs")
	inPath := fs.String("input", "", "input file, one message per line (default: stdin)")
	outPath := fs.String("output", "", "output file (default: stdout)")
	useGzip := fs.Bool("gzip", false, "read gzip-compressed input / write gzip-compressed output")
	_ = fs.Parse(args)

	records, err := collectRecords(*family, *inPath, *useGzip)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recorddump: %v\n", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "recorddump: creating output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if *useGzip {
		gw := gzip.NewWriter(w)
		defer gw.Close()
		w = gw
	}

	runID := uuid.New()
	if err := dump(records, w, runID); err != nil {
		fmt.Fprintf(os.Stderr, "recorddump: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "recorddump: run %s wrote %s records\n", runID, humanize.Comma(int64(len(records))))
}

func collectRecords(family, inPath string, useGzip bool) ([]record.Record, error) {
	family = strings.ToLower(family)
	if family != "nmea" && family != "sbs" {
		return nil, fmt.Errorf("unknown or missing -family %q (want nmea or sbs)", family)
	}

	var r io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if useGzip {
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip input: %w", err)
		}
		defer gr.Close()
		r = gr
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nmeaParser := nmea.NewParser()
	var out []record.Record
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var rec record.Recorder
		var err error
		if family == "nmea" {
			rec, err = nmeaParser.Parse(line)
		} else {
			rec, err = sbs.Parse(line)
		}
		if err != nil {
			continue
		}
		out = append(out, rec.ToRecord())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return out, nil
}

func dumpNDJSON(records []record.Record, w io.Writer, runID uuid.UUID) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		r["run_id"] = runID.String()
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// dumpGeoJSON renders every record carrying a latitude/longitude as a
// GeoJSON Point feature. Records with no position (most SBS transmission
// types, most NMEA sentence types other than GGA/RMC or an AIS position
// report) are skipped; recorddump logs how many were dropped.
func dumpGeoJSON(records []record.Record, w io.Writer, runID uuid.UUID) error {
	fc := geojson.NewFeatureCollection()
	skipped := 0
	for _, r := range records {
		lat, latOK := r["latitude"].(float64)
		lon, lonOK := r["longitude"].(float64)
		if !latOK || !lonOK {
			skipped++
			continue
		}
		f := geojson.NewFeature(orb.Point{lon, lat})
		for k, v := range r {
			if k == "latitude" || k == "longitude" {
				continue
			}
			f.Properties[k] = v
		}
		f.Properties["run_id"] = runID.String()
		fc.Append(f)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "recorddump: %d record(s) had no position and were omitted\n", skipped)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
