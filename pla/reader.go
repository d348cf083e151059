// Package pla reads the Berkeley PLA subset this system accepts as a
// truth-table specification: `.i`/`.o` size headers, optional
// `.p`/`.ilb`/`.ob`/`.type` metadata, `0`/`1`/`-`/`~` rows, and an `.e`
// terminator.
package pla

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kegliz/syrecgo/cube"
)

// Result is everything a PLA file carries beyond the raw truth table:
// the declared type (fr/fd, defaulting to fd when absent) and the
// input/output line labels from .ilb/.ob, used to give synthesized
// circuit lines readable names instead of x0/y0.
type Result struct {
	Table        *cube.TruthTable
	Type         string
	InputLabels  []string
	OutputLabels []string
}

// ReadFile opens filename and parses its contents as a PLA file.
func ReadFile(filename string) (*Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("pla: open %s: %w", filename, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a PLA file from r.
func Read(r io.Reader) (*Result, error) {
	res := &Result{Table: cube.New(), Type: "fd"}

	var numInputs, numOutputs int
	var declaredRows = -1
	rowCount := 0
	sawHeader := false
	terminated := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if terminated {
			continue
		}

		if strings.HasPrefix(line, ".") {
			fields := strings.Fields(line)
			switch fields[0] {
			case ".i":
				n, err := directiveInt(fields, lineNo, ".i")
				if err != nil {
					return nil, err
				}
				numInputs = n
				sawHeader = true
			case ".o":
				n, err := directiveInt(fields, lineNo, ".o")
				if err != nil {
					return nil, err
				}
				numOutputs = n
				sawHeader = true
			case ".p":
				n, err := directiveInt(fields, lineNo, ".p")
				if err != nil {
					return nil, err
				}
				declaredRows = n
			case ".ilb":
				res.InputLabels = append([]string(nil), fields[1:]...)
			case ".ob":
				res.OutputLabels = append([]string(nil), fields[1:]...)
			case ".type":
				if len(fields) != 2 || (fields[1] != "fr" && fields[1] != "fd") {
					return nil, fmt.Errorf("pla:%d: unsupported .type %q", lineNo, strings.Join(fields[1:], " "))
				}
				res.Type = fields[1]
			case ".e", ".end":
				terminated = true
			default:
				return nil, fmt.Errorf("pla:%d: unrecognized directive %q", lineNo, fields[0])
			}
			continue
		}

		if !sawHeader {
			return nil, fmt.Errorf("pla:%d: data row before .i/.o header", lineNo)
		}
		in, out, err := parseRow(line, numInputs, numOutputs, lineNo)
		if err != nil {
			return nil, err
		}
		if !res.Table.Insert(in, out) {
			return nil, fmt.Errorf("pla:%d: row rejected (width mismatch or duplicate input)", lineNo)
		}
		rowCount++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pla: reading: %w", err)
	}

	if declaredRows >= 0 && declaredRows != rowCount {
		return nil, fmt.Errorf("pla: .p declared %d rows, found %d", declaredRows, rowCount)
	}
	return res, nil
}

func directiveInt(fields []string, lineNo int, name string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("pla:%d: %s expects one argument", lineNo, name)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("pla:%d: %s argument %q is not an integer", lineNo, name, fields[1])
	}
	return n, nil
}

func parseRow(line string, numInputs, numOutputs, lineNo int) (cube.Cube, cube.Cube, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return cube.Cube{}, cube.Cube{}, fmt.Errorf("pla:%d: expected two columns, got %q", lineNo, line)
	}
	in, err := parseCube(fields[0], lineNo)
	if err != nil {
		return cube.Cube{}, cube.Cube{}, err
	}
	out, err := parseCube(fields[1], lineNo)
	if err != nil {
		return cube.Cube{}, cube.Cube{}, err
	}
	if in.Width() != numInputs {
		return cube.Cube{}, cube.Cube{}, fmt.Errorf("pla:%d: input column width %d does not match .i %d", lineNo, in.Width(), numInputs)
	}
	if out.Width() != numOutputs {
		return cube.Cube{}, cube.Cube{}, fmt.Errorf("pla:%d: output column width %d does not match .o %d", lineNo, out.Width(), numOutputs)
	}
	return in, out, nil
}

func parseCube(token string, lineNo int) (cube.Cube, error) {
	vals := make([]cube.Value, len(token))
	for i, r := range token {
		switch r {
		case '0':
			vals[i] = cube.Zero
		case '1':
			vals[i] = cube.One
		case '-', '~':
			vals[i] = cube.DontCare
		default:
			return cube.Cube{}, fmt.Errorf("pla:%d: invalid cube character %q", lineNo, r)
		}
	}
	return cube.New(vals...), nil
}
