package output_test

import (
	"encoding/json"
	"testing"

	"github.com/hscells/grdeval/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	topics  = []string{"T1", "T2", "amean"}
	headers = []string{"ndcg@3", "err@3"}
	data    = [][]float64{
		{1, 0, 0.5},
		{0.9016927083333334, 0.123456789, 0.5125},
	}
)

func TestCsvReportFormatter(t *testing.T) {
	s, err := output.CsvReportFormatter("R", topics, headers, data)
	require.NoError(t, err)
	assert.Equal(t, "runid,topic,ndcg@3,err@3\n"+
		"R,T1,1.00000,0.90169\n"+
		"R,T2,0.00000,0.12346\n"+
		"R,amean,0.50000,0.51250\n", s)
}

func TestCsvReportFormatterMismatch(t *testing.T) {
	_, err := output.CsvReportFormatter("R", topics[:2], headers, data)
	assert.Error(t, err)
	_, err = output.CsvReportFormatter("R", topics, headers[:1], data)
	assert.Error(t, err)
}

func TestJsonReportFormatter(t *testing.T) {
	s, err := output.JsonReportFormatter("R", topics, headers, data)
	require.NoError(t, err)

	var v report
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	assert.Equal(t, "R", v.RunID)
	assert.Len(t, v.Topics, 2)
	assert.Equal(t, 0.90169, v.Topics["T1"]["err@3"])
	assert.Equal(t, 0.5, v.Mean["ndcg@3"])
}

type report struct {
	RunID  string                        `json:"runid"`
	Topics map[string]map[string]float64 `json:"topics"`
	Mean   map[string]float64            `json:"amean"`
}

func TestJsonReportFormatterTopicNamedLikeMean(t *testing.T) {
	s, err := output.JsonReportFormatter("R", []string{"amean", "b", "amean"}, headers, [][]float64{
		{0.25, 0.75, 0.5},
		{0.1, 0.3, 0.2},
	})
	require.NoError(t, err)

	var v report
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	require.Len(t, v.Topics, 2)
	assert.Equal(t, 0.25, v.Topics["amean"]["ndcg@3"])
	assert.Equal(t, 0.75, v.Topics["b"]["ndcg@3"])
	assert.Equal(t, 0.5, v.Mean["ndcg@3"])
	assert.Equal(t, 0.2, v.Mean["err@3"])
}

func TestCsvReportFormatterQuotesFields(t *testing.T) {
	s, err := output.CsvReportFormatter(`run,"x"`, []string{"a,b", "amean"}, headers[:1], [][]float64{{1, 1}})
	require.NoError(t, err)
	assert.Equal(t, "runid,topic,ndcg@3\n"+
		`"run,""x""","a,b",1.00000`+"\n"+
		`"run,""x""",amean,1.00000`+"\n", s)
}
