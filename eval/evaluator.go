// Package eval computes rank-quality measures over graded relevance.
package eval

// Evaluator is an interface for evaluating the gains of a ranked list of documents.
type Evaluator interface {
	Score(topic string, gains []Grade) float64
	Name() string
}

// Evaluate scores the gains of one topic using the supplied evaluation
// measurements. Scores are returned in the order of the evaluators.
func Evaluate(evaluators []Evaluator, topic string, gains []Grade) []float64 {
	scores := make([]float64, len(evaluators))
	for i, evaluator := range evaluators {
		scores[i] = evaluator.Score(topic, gains)
	}
	return scores
}

// Names returns the name of each evaluator.
func Names(evaluators []Evaluator) []string {
	names := make([]string, len(evaluators))
	for i, evaluator := range evaluators {
		names[i] = evaluator.Name()
	}
	return names
}
