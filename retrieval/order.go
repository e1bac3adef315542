package retrieval

import (
	"sort"

	"github.com/hscells/trecresults"
)

// Topic is the ranked documents retrieved for a single topic.
type Topic struct {
	ID        string
	Documents []string
}

// Order sorts a result list by ascending topic, then descending score. Equal
// scores are ordered by descending document identifier, so that any two
// evaluations of the same run rank its documents identically.
func Order(list trecresults.ResultList) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Topic != b.Topic {
			return a.Topic < b.Topic
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.DocId > b.DocId
	})
}

// Ordered returns an ordered copy of the results of a run, leaving the run
// itself untouched.
func (r Run) Ordered() trecresults.ResultList {
	list := make(trecresults.ResultList, len(r.Results))
	copy(list, r.Results)
	Order(list)
	return list
}

// Group partitions a result list by topic. Topics appear in the order they
// are first seen and documents keep their order within a topic.
func Group(list trecresults.ResultList) []Topic {
	index := make(map[string]int)
	var topics []Topic
	for _, result := range list {
		i, ok := index[result.Topic]
		if !ok {
			i = len(topics)
			index[result.Topic] = i
			topics = append(topics, Topic{ID: result.Topic})
		}
		topics[i].Documents = append(topics[i].Documents, result.DocId)
	}
	return topics
}
