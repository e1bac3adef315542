package eval

import (
	"fmt"
	"math"
)

// NDCGEvaluator normalises the DCG of a topic by its ideal DCG.
type NDCGEvaluator struct {
	K int
	// Ideal is the DCG of the best possible ordering of each topic, computed
	// at the same cutoff.
	Ideal map[string]float64
}

// ERREvaluator computes expected reciprocal rank on a single grade scale.
type ERREvaluator struct {
	K        int
	MaxGrade Grade
}

// DCG computes discounted cumulative gain over the first k gains. Terms are
// summed in rank order.
func DCG(k int, gains []Grade) float64 {
	var score float64
	for i, g := range gains {
		// Compute DCG at a cutoff.
		if i >= k {
			break
		}
		score += g.gain() / math.Log2(float64(i)+2)
	}
	return score
}

// ERR computes expected reciprocal rank over the first k gains. The
// probability that a document satisfies the user is (2^g - 1) / 2^maxGrade,
// where maxGrade is the largest grade of the whole judgment set.
func ERR(k int, gains []Grade, maxGrade Grade) float64 {
	if k <= 0 || len(gains) == 0 {
		return 0
	}
	scale := maxGrade.gain() + 1

	var score float64
	decay := 1.0
	for i, g := range gains {
		if i >= k {
			break
		}
		r := g.gain() / scale
		score += r * decay / float64(i+1)
		decay *= 1 - r
	}
	return score
}

func (e NDCGEvaluator) Score(topic string, gains []Grade) float64 {
	ideal := e.Ideal[topic]
	// A topic without relevant judgments cannot be rewarded.
	if ideal <= 0 {
		return 0
	}
	return DCG(e.K, gains) / ideal
}

func (e NDCGEvaluator) Name() string {
	return fmt.Sprintf("ndcg@%d", e.K)
}

func (e ERREvaluator) Score(topic string, gains []Grade) float64 {
	return ERR(e.K, gains, e.MaxGrade)
}

func (e ERREvaluator) Name() string {
	return fmt.Sprintf("err@%d", e.K)
}
