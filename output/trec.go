package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/hscells/rankeval/eval"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// WriteRun writes a run in the TREC results format, one result per line:
// topic, iteration, document, rank, score and run name.
func WriteRun(w io.Writer, run trecresults.ResultFile, runName string) error {
	topics := make([]string, 0, len(run.Results))
	for topic := range run.Results {
		topics = append(topics, topic)
	}
	eval.SortTopics(topics)

	for _, topic := range topics {
		for _, r := range eval.Ordered(run.Results[topic]) {
			line := *r
			line.Iteration = iteration(r.Iteration)
			if len(runName) > 0 {
				line.RunName = runName
			}
			if _, err := io.WriteString(w, line.String()+"\n"); err != nil {
				return errors.Wrapf(err, "writing run for topic %s", topic)
			}
		}
	}
	return nil
}

// WriteQrels writes qrels in the TREC qrels format, one judgement per line:
// topic, iteration, document and relevance grade.
func WriteQrels(w io.Writer, qrels trecresults.QrelsFile) error {
	topics := make([]string, 0, len(qrels.Qrels))
	for topic := range qrels.Qrels {
		topics = append(topics, topic)
	}
	eval.SortTopics(topics)

	for _, topic := range topics {
		judgements := qrels.Qrels[topic]
		docs := make([]string, 0, len(judgements))
		for docID := range judgements {
			docs = append(docs, docID)
		}
		sortDocIDs(docs)
		for _, docID := range docs {
			q := judgements[docID]
			if _, err := fmt.Fprintf(w, "%s 0 %s %d\n", topic, docID, q.Score); err != nil {
				return errors.Wrapf(err, "writing qrels for topic %s", topic)
			}
		}
	}
	return nil
}

func iteration(it string) string {
	if len(it) == 0 {
		return "Q0"
	}
	return it
}

// sortDocIDs orders identifiers by length and then lexically, so that doc2
// comes before doc10.
func sortDocIDs(docs []string) {
	sort.Slice(docs, func(i, j int) bool {
		if len(docs[i]) != len(docs[j]) {
			return len(docs[i]) < len(docs[j])
		}
		return docs[i] < docs[j]
	})
}
