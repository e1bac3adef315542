// Package output provides different formats of output for evaluation reports.
package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pkg/errors"
)

// Precision is the number of decimal places scores are written with.
const Precision = 5

// ReportFormatter is used by the evaluation pipeline to output a report. The
// final topic is the summary row; data is indexed by measure, then topic.
type ReportFormatter func(runID string, topics, headers []string, data [][]float64) (string, error)

func check(topics, headers []string, data [][]float64) error {
	if len(headers) != len(data) {
		return errors.New("the length of headers and data must be the same")
	}
	for _, d := range data {
		if len(d) != len(topics) {
			return errors.New("the length of topics and data must be the same")
		}
	}
	return nil
}

// CsvReportFormatter outputs a report as CSV with a runid,topic,... header.
func CsvReportFormatter(runID string, topics, headers []string, data [][]float64) (string, error) {
	if err := check(topics, headers, data); err != nil {
		return "", err
	}
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	h := []string{"runid", "topic"}
	h = append(h, headers...)
	if err := w.Write(h); err != nil {
		return "", err
	}
	for j, topic := range topics {
		record := make([]string, len(data)+2)
		record[0] = runID
		record[1] = topic
		for i := range data {
			record[i+2] = strconv.FormatFloat(data[i][j], 'f', Precision, 64)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
