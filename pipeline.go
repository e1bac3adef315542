// Package grdeval evaluates a ranked run against relevance judgments, computing
// nDCG and ERR for every topic of the run and their arithmetic means.
package grdeval

import (
	"github.com/hscells/grdeval/eval"
	"github.com/hscells/grdeval/output"
	"github.com/hscells/grdeval/qrels"
	"github.com/hscells/grdeval/retrieval"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// DefaultCutoff is the rank depth evaluated when none is configured.
const DefaultCutoff = 20

// Mean is the topic label of the summary row.
const Mean = "amean"

// ErrEmptyRun is returned when a run has no ranked documents: there is no run
// identifier to report and nothing to average.
var ErrEmptyRun = errors.New("run contains no results")

type cutoff int
type workers int

// Observer is notified as the topics of a run are scored. Scored may be
// called from several goroutines when the pipeline has more than one worker.
type Observer interface {
	Start(topics int)
	Scored(result TopicResult)
	Finish()
}

// Pipeline contains all the information for evaluating a run.
type Pipeline struct {
	Judgments  []trecresults.Qrel
	Run        retrieval.Run
	Cutoff     int
	Workers    int
	Formatters []output.ReportFormatter
	Observer   Observer
}

// Cutoff sets the rank depth of both measures.
func Cutoff(k int) func() interface{} {
	return func() interface{} {
		return cutoff(k)
	}
}

// Workers sets how many topics are scored concurrently.
func Workers(n int) func() interface{} {
	return func() interface{} {
		return workers(n)
	}
}

// Output adds report formatters to the pipeline.
func Output(formatter ...output.ReportFormatter) func() interface{} {
	return func() interface{} {
		return formatter
	}
}

// Observe attaches an observer to the pipeline.
func Observe(o Observer) func() interface{} {
	return func() interface{} {
		return o
	}
}

// NewPipeline creates a new evaluation pipeline. The judgments and the run are
// required. Additional components are provided via the optional functional
// arguments.
func NewPipeline(judgments []trecresults.Qrel, run retrieval.Run, components ...func() interface{}) Pipeline {
	p := Pipeline{
		Judgments: judgments,
		Run:       run,
		Cutoff:    DefaultCutoff,
		Workers:   1,
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case cutoff:
			p.Cutoff = int(v)
		case workers:
			p.Workers = int(v)
		case []output.ReportFormatter:
			p.Formatters = append(p.Formatters, v...)
		case Observer:
			p.Observer = v
		}
	}

	return p
}

// Execute evaluates the run. Every topic of the run is scored, including
// topics without judgments, which score zero nDCG.
func (p Pipeline) Execute() (PipelineResult, error) {
	result := PipelineResult{Cutoff: p.Cutoff}

	if len(p.Run.Results) == 0 {
		return result, ErrEmptyRun
	}
	if p.Cutoff < 0 {
		return result, errors.Errorf("cutoff must not be negative, got %d", p.Cutoff)
	}

	store, err := qrels.NewStore(p.Judgments, p.Cutoff)
	if err != nil {
		return result, err
	}
	result.Judgments = store.Len()

	ordered := p.Run.Ordered()
	result.RunID = ordered[0].RunName
	topics := retrieval.Group(ordered)

	measures := []eval.Evaluator{
		eval.NDCGEvaluator{K: p.Cutoff, Ideal: store.Ideal},
		eval.ERREvaluator{K: p.Cutoff, MaxGrade: store.MaxGrade},
	}
	result.Headers = eval.Names(measures)

	if p.Observer != nil {
		p.Observer.Start(len(topics))
		defer p.Observer.Finish()
	}

	// Topics are independent; each goroutine writes only its own row.
	result.Topics = make([]TopicResult, len(topics))
	var g errgroup.Group
	limit := p.Workers
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, topic := range topics {
		i, topic := i, topic
		g.Go(func() error {
			gains := store.Gains(topic.ID, topic.Documents)
			scores := eval.Evaluate(measures, topic.ID, gains)
			result.Topics[i] = TopicResult{
				Topic:     topic.ID,
				NDCG:      scores[0],
				ERR:       scores[1],
				Retrieved: len(topic.Documents),
				Judged:    store.Judged(topic.ID),
				Ideal:     store.IdealGain(topic.ID),
			}
			if p.Observer != nil {
				p.Observer.Scored(result.Topics[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	result.Mean = mean(result.Topics)
	result.Unjudged, result.Unretrieved = coverage(store, topics)

	for _, formatter := range p.Formatters {
		labels, data := result.table()
		out, err := formatter(result.RunID, labels, result.Headers, data)
		if err != nil {
			return result, err
		}
		result.Outputs = append(result.Outputs, out)
	}

	return result, nil
}

// mean averages each measure over rows. Unit weights keep stat.Mean summing
// in topic order, so the mean equals the running sum divided by the count.
func mean(rows []TopicResult) TopicResult {
	ndcg := make([]float64, len(rows))
	errs := make([]float64, len(rows))
	weights := make([]float64, len(rows))
	m := TopicResult{Topic: Mean}
	for i, row := range rows {
		ndcg[i] = row.NDCG
		errs[i] = row.ERR
		weights[i] = 1
		m.Retrieved += row.Retrieved
		m.Judged += row.Judged
	}
	m.NDCG = stat.Mean(ndcg, weights)
	m.ERR = stat.Mean(errs, weights)
	return m
}

// coverage finds the topics of the run without judgments and the judged
// topics the run never retrieved for. Neither affects scoring.
func coverage(store *qrels.Store, topics []retrieval.Topic) (unjudged, unretrieved []string) {
	seen := make(map[string]bool, len(topics))
	for _, topic := range topics {
		seen[topic.ID] = true
		if !store.Has(topic.ID) {
			unjudged = append(unjudged, topic.ID)
		}
	}
	for _, topic := range store.Topics() {
		if !seen[topic] {
			unretrieved = append(unretrieved, topic)
		}
	}
	return
}
