// Package qrels reads relevance judgments and holds them for evaluation.
//
// A judgment file has one judgment per line, four whitespace-separated
// fields: topic, iteration (unused), document, relevance. Negative relevance
// marks a document that was judged but must not be rewarded.
package qrels

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/hscells/grdeval/eval"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// ErrFormat is the cause of every malformed judgment line.
var ErrFormat = errors.New("malformed qrels line")

const fields = 4

// ParseLine reads a single judgment.
func ParseLine(line string) (trecresults.Qrel, error) {
	f := strings.Fields(line)
	if len(f) != fields {
		return trecresults.Qrel{}, errors.Wrapf(ErrFormat, "expected %d fields, got %d", fields, len(f))
	}
	g, err := eval.ParseGrade(f[3])
	if err != nil {
		return trecresults.Qrel{}, errors.Wrapf(ErrFormat, "%v", err)
	}
	return trecresults.Qrel{
		Topic:     f[0],
		Iteration: f[1],
		DocId:     f[2],
		Score:     int64(g),
	}, nil
}

// Read reads every judgment from r. The first malformed line aborts reading.
func Read(r io.Reader) ([]trecresults.Qrel, error) {
	var judgments []trecresults.Qrel
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		q, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		judgments = append(judgments, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", n+1)
	}
	return judgments, nil
}

// ReadFile reads every judgment from the file at path.
func ReadFile(path string) ([]trecresults.Qrel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	judgments, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return judgments, nil
}
