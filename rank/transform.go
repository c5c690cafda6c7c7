package rank

import (
	"fmt"
	"strconv"

	"github.com/hscells/trecresults"
)

const (
	// Iteration is the iteration column of generated results and qrels.
	Iteration = "Q0"
	// RunName names generated results.
	RunName = "rankeval"
)

// DocID is the synthetic identifier of the document at position d.
func DocID(d int) string {
	return fmt.Sprintf("doc%d", d)
}

// Topic is the query identifier of the query at index i.
func Topic(i int) string {
	return strconv.Itoa(i)
}

// Transform converts the rank lists of a set of queries into a run and qrels.
//
// For each query the run is a perfectly ordered list doc1..docN, where N is
// the deepest observed rank after masking with cutoff. Observed ranks are
// judged relevant in the qrels. Each unseen rank adds one more relevant
// document after docN to the qrels only, so it is always a miss.
func Transform(lists []List, cutoff int) (trecresults.ResultFile, trecresults.QrelsFile) {
	run := trecresults.ResultFile{Results: make(map[string]trecresults.ResultList, len(lists))}
	qrels := trecresults.QrelsFile{Qrels: make(map[string]trecresults.Qrels, len(lists))}

	for i, list := range lists {
		topic := Topic(i)
		results, judgements := transformQuery(topic, list.Mask(cutoff), cutoff)
		run.Results[topic] = results
		qrels.Qrels[topic] = judgements
	}

	return run, qrels
}

func transformQuery(topic string, masked List, cutoff int) (trecresults.ResultList, trecresults.Qrels) {
	maxRank := masked.MaxRank(cutoff)

	results := make(trecresults.ResultList, maxRank)
	judgements := make(trecresults.Qrels)
	for d := 1; d <= maxRank; d++ {
		docID := DocID(d)
		results[d-1] = &trecresults.Result{
			Topic:     topic,
			Iteration: Iteration,
			DocId:     docID,
			Rank:      int64(d),
			Score:     float64(maxRank + 1 - d),
			RunName:   RunName,
		}
		if masked.Contains(d) {
			judgements[docID] = relevant(topic, docID)
		}
	}

	// Unseen documents are judged relevant but never retrieved.
	for i := 1; i <= masked.CountUnseen(); i++ {
		docID := DocID(maxRank + i)
		judgements[docID] = relevant(topic, docID)
	}

	return results, judgements
}

func relevant(topic, docID string) *trecresults.Qrel {
	return &trecresults.Qrel{
		Topic:     topic,
		Iteration: "0",
		DocId:     docID,
		Score:     1,
	}
}
