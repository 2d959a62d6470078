// Package vecio reads direction batches from text and JSON files and writes
// the resulting color batches.
package vecio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// ErrFormat is returned for malformed input lines or unsupported extensions.
var ErrFormat = errors.New("unsupported or malformed vector file")

// Extensions lists the input file extensions Read understands.
var Extensions = []string{".csv", ".txt", ".xyz", ".json"}

// IsVectorFile reports whether path has an extension Read understands.
func IsVectorFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Read loads a batch of vectors. Text files hold one vector per line with
// components separated by commas, semicolons or whitespace; blank lines and
// lines starting with '#' are skipped, as is a non-numeric first line
// (header). Columns beyond the third are ignored. JSON files hold an array
// of 3-element arrays.
func Read(path string) ([]mathutil.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "vecio: open %s", path)
	}
	defer f.Close()

	var vs []mathutil.Vec3
	if strings.EqualFold(filepath.Ext(path), ".json") {
		vs, err = ReadJSON(f)
	} else {
		vs, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "vecio: %s", path)
	}
	return vs, nil
}

// ReadText parses the delimited text format described in Read.
func ReadText(r io.Reader) ([]mathutil.Vec3, error) {
	var vs []mathutil.Vec3
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo, dataLines := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		dataLines++

		v, err := parseVec(fields)
		if err != nil {
			if dataLines == 1 && !startsNumeric(fields) {
				continue
			}
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		vs = append(vs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	return vs, nil
}

func parseVec(fields []string) (mathutil.Vec3, error) {
	var v mathutil.Vec3
	if len(fields) < 3 {
		return v, errors.Wrapf(ErrFormat, "want 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, errors.Wrapf(ErrFormat, "component %d: %q", i, fields[i])
		}
		v[i] = x
	}
	return v, nil
}

func startsNumeric(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(fields[0], 64)
	return err == nil
}

// ReadJSON parses an array of 3-element arrays.
func ReadJSON(r io.Reader) ([]mathutil.Vec3, error) {
	var raw [][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	vs := make([]mathutil.Vec3, len(raw))
	for i, row := range raw {
		if len(row) != 3 {
			return nil, errors.Wrapf(ErrFormat, "element %d has %d components", i, len(row))
		}
		vs[i] = mathutil.Vec3{row[0], row[1], row[2]}
	}
	return vs, nil
}

// Write stores colors as CSV (r,g,b with a header line) or, for a .json
// path, as an array of 3-element arrays. Parent directories are created.
func Write(path string, colors []colormap.RGB) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "vecio: mkdir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "vecio: create %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = WriteJSON(f, colors)
	case ".csv", ".txt":
		err = WriteCSV(f, colors)
	default:
		err = errors.Wrapf(ErrFormat, "output extension %q", filepath.Ext(path))
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "vecio: write %s", path)
	}
	return nil
}

// WriteCSV writes one "r,g,b" line per color after an "r,g,b" header.
func WriteCSV(w io.Writer, colors []colormap.RGB) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "r,g,b")
	for _, c := range colors {
		fmt.Fprintf(bw, "%s,%s,%s\n", fmtFloat(c[0]), fmtFloat(c[1]), fmtFloat(c[2]))
	}
	return bw.Flush()
}

// WriteJSON writes an array of [r,g,b] arrays.
func WriteJSON(w io.Writer, colors []colormap.RGB) error {
	rows := make([][3]float64, len(colors))
	for i, c := range colors {
		rows[i] = c
	}
	return json.NewEncoder(w).Encode(rows)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
