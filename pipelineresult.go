package grdeval

// TopicResult is the evaluation of a single topic.
type TopicResult struct {
	Topic     string
	NDCG      float64
	ERR       float64
	Retrieved int
	// Judged counts the judgments of the topic, negative ones included.
	Judged int
	// Ideal is the DCG of the topic's ideal ranking at the cutoff.
	Ideal float64
}

// PipelineResult is the output of an evaluation pipeline.
type PipelineResult struct {
	// RunID is the run identifier of the top ranked result of the first topic.
	RunID   string
	Cutoff  int
	Headers []string
	// Judgments counts the judgments the run was evaluated against.
	Judgments int
	// Topics holds one row per topic of the run, in ascending topic order.
	Topics []TopicResult
	// Mean holds the arithmetic mean of each measure over Topics.
	Mean TopicResult
	// Unjudged are topics of the run that have no judgments.
	Unjudged []string
	// Unretrieved are judged topics absent from the run.
	Unretrieved []string
	// Outputs holds the report produced by each formatter of the pipeline.
	Outputs []string
}

// table lays the result out for a report formatter: the topic rows followed
// by the mean row, with data indexed by measure then topic.
func (r PipelineResult) table() ([]string, [][]float64) {
	rows := append(append([]TopicResult(nil), r.Topics...), r.Mean)
	topics := make([]string, len(rows))
	data := [][]float64{
		make([]float64, len(rows)),
		make([]float64, len(rows)),
	}
	for j, row := range rows {
		topics[j] = row.Topic
		data[0][j] = row.NDCG
		data[1][j] = row.ERR
	}
	return topics, data
}
