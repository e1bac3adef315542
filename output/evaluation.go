package output

import (
	"encoding/json"
	"math"
)

type jsonReport struct {
	RunID  string                        `json:"runid"`
	Topics map[string]map[string]float64 `json:"topics"`
	Mean   map[string]float64            `json:"amean,omitempty"`
}

// JsonReportFormatter outputs a report in a JSON format. Topic rows are keyed
// by topic then measure and the final summary row is kept apart under
// "amean", so a topic may share the summary's label. Scores are rounded like
// the CSV report.
func JsonReportFormatter(runID string, topics, headers []string, data [][]float64) (string, error) {
	if err := check(topics, headers, data); err != nil {
		return "", err
	}
	r := jsonReport{
		RunID:  runID,
		Topics: make(map[string]map[string]float64, len(topics)),
	}
	scale := math.Pow(10, Precision)
	row := func(j int) map[string]float64 {
		m := make(map[string]float64, len(headers))
		for i, header := range headers {
			m[header] = math.Round(data[i][j]*scale) / scale
		}
		return m
	}
	last := len(topics) - 1
	for j := 0; j < last; j++ {
		r.Topics[topics[j]] = row(j)
	}
	if last >= 0 {
		r.Mean = row(last)
	}

	v, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v) + "\n", nil
}
