package qrels

import (
	"sort"

	"github.com/hscells/grdeval/eval"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// Store holds the judgments of every topic, ready for scoring a run.
//
// Judgments with negative relevance count as judged and take part in
// grouping by topic, but they never contribute gain and cannot be looked
// up: at scoring time they are indistinguishable from unjudged documents.
type Store struct {
	// Qrels maps topic and document to the judgment used for lookup. Only
	// judgments with nonnegative relevance are present.
	Qrels trecresults.QrelsFile
	// Ideal is the DCG of the descending sort of each topic's nonnegative
	// grades. Every judged topic has an entry.
	Ideal map[string]float64
	// MaxGrade is the largest grade over the whole judgment set, used as the
	// normalisation scale of ERR.
	MaxGrade eval.Grade
	// Cutoff is the depth the ideal gains were computed at.
	Cutoff int

	judged map[string]int
}

// NewStore groups judgments by topic and computes the ideal gain of each
// topic at the cutoff k. When a topic judges the same document twice, every
// nonnegative row enters the ideal ordering and the last row wins lookups.
// A judgment whose grade is out of range aborts construction.
func NewStore(judgments []trecresults.Qrel, k int) (*Store, error) {
	s := &Store{
		Qrels:  trecresults.QrelsFile{Qrels: make(map[string]trecresults.Qrels)},
		Ideal:  make(map[string]float64),
		Cutoff: k,
		judged: make(map[string]int),
	}

	topics := make(map[string][]eval.Grade)
	for _, j := range judgments {
		g, err := eval.NewGrade(j.Score)
		if err != nil {
			return nil, errors.Wrapf(err, "topic %s document %s", j.Topic, j.DocId)
		}
		if g > s.MaxGrade {
			s.MaxGrade = g
		}
		s.judged[j.Topic]++
		gains := topics[j.Topic]
		if g.Excluded() {
			topics[j.Topic] = gains
			continue
		}
		topics[j.Topic] = append(gains, g)

		if _, ok := s.Qrels.Qrels[j.Topic]; !ok {
			s.Qrels.Qrels[j.Topic] = make(trecresults.Qrels)
		}
		q := j
		s.Qrels.Qrels[j.Topic][j.DocId] = &q
	}

	for topic, gains := range topics {
		sort.Slice(gains, func(i, j int) bool {
			return gains[i] > gains[j]
		})
		s.Ideal[topic] = eval.DCG(k, gains)
	}

	return s, nil
}

// Grade returns the relevance of a document for a topic. Unjudged documents
// and documents judged with negative relevance have grade zero.
func (s *Store) Grade(topic, document string) eval.Grade {
	if q, ok := s.Qrels.Qrels[topic][document]; ok {
		return eval.Grade(q.Score)
	}
	return 0
}

// Gains looks up the grade of each document in rank order.
func (s *Store) Gains(topic string, documents []string) []eval.Grade {
	gains := make([]eval.Grade, len(documents))
	for i, d := range documents {
		gains[i] = s.Grade(topic, d)
	}
	return gains
}

// IdealGain returns the ideal DCG of a topic, zero if the topic was never judged.
func (s *Store) IdealGain(topic string) float64 {
	return s.Ideal[topic]
}

// Judged returns the number of judgment rows of a topic, negative ones included.
func (s *Store) Judged(topic string) int {
	return s.judged[topic]
}

// Has reports whether the topic has any judgment rows.
func (s *Store) Has(topic string) bool {
	_, ok := s.judged[topic]
	return ok
}

// Topics returns every judged topic in ascending order.
func (s *Store) Topics() []string {
	topics := make([]string, 0, len(s.judged))
	for topic := range s.judged {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Len returns the number of judgment rows held.
func (s *Store) Len() int {
	n := 0
	for _, c := range s.judged {
		n += c
	}
	return n
}
