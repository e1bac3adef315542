// Package retrieval reads the ranked output of a retrieval system and
// puts it in the order it is evaluated in.
package retrieval

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// ErrFormat is the cause of every malformed run line.
var ErrFormat = errors.New("malformed run line")

const fields = 6

// Run is the ranking of a single retrieval system.
type Run struct {
	// ID is the run identifier of the first line read. Reports are labelled
	// with the identifier of the top ranked result instead.
	ID      string
	Results trecresults.ResultList
}

// ParseLine reads a single ranked document. A run line has six
// whitespace-separated fields: topic, iteration, document, rank (unused),
// score, run identifier.
func ParseLine(line string) (*trecresults.Result, error) {
	f := strings.Fields(line)
	if len(f) != fields {
		return nil, errors.Wrapf(ErrFormat, "expected %d fields, got %d", fields, len(f))
	}
	score, err := strconv.ParseFloat(f[4], 64)
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "score %q is not a number", f[4])
	}
	if math.IsNaN(score) {
		return nil, errors.Wrapf(ErrFormat, "score %q is not a number", f[4])
	}
	return &trecresults.Result{
		Topic:     f[0],
		Iteration: f[1],
		DocId:     f[2],
		Score:     score,
		RunName:   f[5],
	}, nil
}

// Read reads a run from r. The first malformed line aborts reading.
func Read(r io.Reader) (Run, error) {
	var run Run
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		result, err := ParseLine(scanner.Text())
		if err != nil {
			return Run{}, errors.Wrapf(err, "line %d", n)
		}
		if len(run.Results) == 0 {
			run.ID = result.RunName
		}
		run.Results = append(run.Results, result)
	}
	if err := scanner.Err(); err != nil {
		return Run{}, errors.Wrapf(err, "line %d", n+1)
	}
	return run, nil
}

// ReadFile reads a run from the file at path.
func ReadFile(path string) (Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return Run{}, err
	}
	defer f.Close()

	run, err := Read(f)
	if err != nil {
		return Run{}, errors.Wrap(err, path)
	}
	return run, nil
}
