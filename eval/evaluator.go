// Package eval scores ranked result lists against relevance judgements.
package eval

import (
	"sort"
	"strconv"

	"github.com/hscells/trecresults"
)

// Evaluator is an interface for evaluating a retrieved list of documents.
// Results are expected to be in rank order.
type Evaluator interface {
	Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64
	Name() string
}

// Evaluate scores documents using supplied evaluation measurements. The scores
// are keyed by topic and then by evaluator name. Every topic in either the run
// or the qrels is scored.
func Evaluate(evaluators []Evaluator, run trecresults.ResultFile, qrels trecresults.QrelsFile) map[string]map[string]float64 {
	names := make([]string, len(evaluators))
	for i, evaluator := range evaluators {
		names[i] = evaluator.Name()
	}
	return scoreTopics(Topics(run, qrels), names, evaluators, run, qrels)
}

// scoreTopics scores each topic with the evaluators, keying each score by
// the evaluator's entry in names.
func scoreTopics(topics, names []string, evaluators []Evaluator, run trecresults.ResultFile, qrels trecresults.QrelsFile) map[string]map[string]float64 {
	scores := make(map[string]map[string]float64, len(topics))
	for _, topic := range topics {
		results := Ordered(run.Results[topic])
		scores[topic] = make(map[string]float64, len(evaluators))
		for i, evaluator := range evaluators {
			scores[topic][names[i]] = evaluator.Score(&results, qrels.Qrels[topic])
		}
	}
	return scores
}

// Ordered returns a copy of the results sorted by descending score, with ties
// broken by ascending document id.
func Ordered(results trecresults.ResultList) trecresults.ResultList {
	ordered := make(trecresults.ResultList, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].DocId < ordered[j].DocId
	})
	return ordered
}

// Topics lists the topics in a run and qrels in order.
func Topics(run trecresults.ResultFile, qrels trecresults.QrelsFile) []string {
	seen := make(map[string]struct{})
	var topics []string
	for topic := range run.Results {
		if _, ok := seen[topic]; !ok {
			seen[topic] = struct{}{}
			topics = append(topics, topic)
		}
	}
	for topic := range qrels.Qrels {
		if _, ok := seen[topic]; !ok {
			seen[topic] = struct{}{}
			topics = append(topics, topic)
		}
	}
	SortTopics(topics)
	return topics
}

// SortTopics sorts topics numerically where possible, falling back to
// lexical order.
func SortTopics(topics []string) {
	sort.Slice(topics, func(i, j int) bool {
		a, errA := strconv.ParseInt(topics[i], 10, 64)
		b, errB := strconv.ParseInt(topics[j], 10, 64)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return topics[i] < topics[j]
	})
}

func isRelevant(qrels trecresults.Qrels, docID string) bool {
	if qrel, ok := qrels[docID]; ok {
		return qrel.Score > 0
	}
	return false
}

func numRel(qrels trecresults.Qrels) float64 {
	n := 0.0
	for _, qrel := range qrels {
		if qrel.Score > 0 {
			n++
		}
	}
	return n
}

// top is the first k results, or all of them when k is not positive.
func top(results *trecresults.ResultList, k int) trecresults.ResultList {
	if k <= 0 || k >= len(*results) {
		return *results
	}
	return (*results)[:k]
}

func numRelRet(results *trecresults.ResultList, qrels trecresults.Qrels, k int) float64 {
	n := 0.0
	for _, result := range top(results, k) {
		if isRelevant(qrels, result.DocId) {
			n++
		}
	}
	return n
}

func withK(name string, k int) string {
	if k > 0 {
		return name + "@" + strconv.Itoa(k)
	}
	return name
}
