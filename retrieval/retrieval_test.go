package retrieval_test

import (
	"os"
	"strings"
	"testing"

	"github.com/hscells/grdeval/retrieval"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	r, err := retrieval.ParseLine("401 Q0 FBIS3-10082  1\t12.5 bm25")
	require.NoError(t, err)
	assert.Equal(t, "401", r.Topic)
	assert.Equal(t, "Q0", r.Iteration)
	assert.Equal(t, "FBIS3-10082", r.DocId)
	assert.Equal(t, 12.5, r.Score)
	assert.Equal(t, "bm25", r.RunName)
}

func TestParseLineIgnoresRank(t *testing.T) {
	r, err := retrieval.ParseLine("401 Q0 d not-a-rank 1 bm25")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Score)
}

func TestParseLineRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"401 Q0 d 1 1.0",
		"401 Q0 d 1 1.0 bm25 extra",
		"401 Q0 d 1 high bm25",
		"401 Q0 d 1 NaN bm25",
	} {
		_, err := retrieval.ParseLine(line)
		require.Error(t, err, line)
		assert.Equal(t, retrieval.ErrFormat, errors.Cause(err), line)
	}
}

func TestReadFile(t *testing.T) {
	run, err := retrieval.ReadFile("testdata/sample.run")
	require.NoError(t, err)
	assert.Equal(t, "bm25", run.ID)
	assert.Len(t, run.Results, 5)

	_, err = retrieval.ReadFile("testdata/missing.run")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestReadIdentifiesLine(t *testing.T) {
	_, err := retrieval.Read(strings.NewReader("1 Q0 a 1 1 r\n1 Q0 b 2 r\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, retrieval.ErrFormat, errors.Cause(err))
}

func TestReadEmpty(t *testing.T) {
	run, err := retrieval.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, run.Results)
	assert.Equal(t, "", run.ID)
}

func docs(list trecresults.ResultList) []string {
	d := make([]string, len(list))
	for i, r := range list {
		d[i] = r.Topic + ":" + r.DocId
	}
	return d
}

func TestOrder(t *testing.T) {
	run, err := retrieval.ReadFile("testdata/sample.run")
	require.NoError(t, err)

	ordered := run.Ordered()
	assert.Equal(t, []string{"T1:c", "T1:b", "T1:a", "T2:a", "T2:z"}, docs(ordered))
	// The run itself keeps file order.
	assert.Equal(t, "T2:a", docs(run.Results)[0])
}

func TestOrderTiesByDescendingDocument(t *testing.T) {
	list := trecresults.ResultList{
		{Topic: "1", DocId: "a", Score: 1},
		{Topic: "1", DocId: "c", Score: 1},
		{Topic: "1", DocId: "b", Score: 1},
		{Topic: "1", DocId: "d", Score: 0.5},
	}
	retrieval.Order(list)
	assert.Equal(t, []string{"1:c", "1:b", "1:a", "1:d"}, docs(list))
}

func TestOrderTopicsLexicographically(t *testing.T) {
	list := trecresults.ResultList{
		{Topic: "10", DocId: "a", Score: 1},
		{Topic: "9", DocId: "a", Score: 1},
		{Topic: "1", DocId: "a", Score: 1},
	}
	retrieval.Order(list)
	assert.Equal(t, []string{"1:a", "10:a", "9:a"}, docs(list))
}

func TestGroup(t *testing.T) {
	run, err := retrieval.ReadFile("testdata/sample.run")
	require.NoError(t, err)

	topics := retrieval.Group(run.Ordered())
	require.Len(t, topics, 2)
	assert.Equal(t, retrieval.Topic{ID: "T1", Documents: []string{"c", "b", "a"}}, topics[0])
	assert.Equal(t, retrieval.Topic{ID: "T2", Documents: []string{"a", "z"}}, topics[1])
	assert.Empty(t, retrieval.Group(nil))
}
