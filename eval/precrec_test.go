package eval_test

import (
	"testing"

	"github.com/hscells/rankeval/eval"
	"github.com/hscells/trecresults"
	"github.com/stretchr/testify/assert"
)

// results creates a ranked list of the given documents.
func results(docs ...string) *trecresults.ResultList {
	l := make(trecresults.ResultList, len(docs))
	for i, d := range docs {
		l[i] = &trecresults.Result{
			Topic: "1",
			DocId: d,
			Rank:  int64(i + 1),
			Score: float64(len(docs) - i),
		}
	}
	return &l
}

// qrels judges the given documents relevant.
func qrels(docs ...string) trecresults.Qrels {
	q := make(trecresults.Qrels)
	for _, d := range docs {
		q[d] = &trecresults.Qrel{Topic: "1", Iteration: "0", DocId: d, Score: 1}
	}
	return q
}

func TestHits(t *testing.T) {
	r := results("a", "b", "c", "d")
	q := qrels("b", "d", "z")

	assert.Equal(t, 0.0, eval.Hits{K: 1}.Score(r, q))
	assert.Equal(t, 1.0, eval.Hits{K: 2}.Score(r, q))
	assert.Equal(t, 2.0, eval.Hits{K: 10}.Score(r, q))
	assert.Equal(t, 2.0, eval.Hits{}.Score(r, q))
}

func TestHitRate(t *testing.T) {
	r := results("a", "b")
	q := qrels("b")

	assert.Equal(t, 0.0, eval.HitRate{K: 1}.Score(r, q))
	assert.Equal(t, 1.0, eval.HitRate{K: 2}.Score(r, q))
}

func TestPrecision(t *testing.T) {
	r := results("a", "b", "c", "d")
	q := qrels("b", "d")

	assert.Equal(t, 0.5, eval.PrecisionAtK{K: 2}.Score(r, q))
	assert.Equal(t, 0.5, eval.PrecisionAtK{K: 4}.Score(r, q))
	// Precision is over K even when fewer documents were retrieved.
	assert.Equal(t, 0.2, eval.PrecisionAtK{K: 10}.Score(r, q))
	assert.Equal(t, 0.5, eval.PrecisionAtK{}.Score(r, q))
	assert.Equal(t, 0.0, eval.PrecisionAtK{}.Score(results(), q))
}

func TestRecall(t *testing.T) {
	r := results("a", "b", "c", "d", "e")
	q := qrels("c", "e")

	assert.Equal(t, 0.0, eval.RecallAtK{K: 2}.Score(r, q))
	assert.Equal(t, 0.5, eval.RecallAtK{K: 3}.Score(r, q))
	assert.Equal(t, 0.5, eval.RecallAtK{K: 4}.Score(r, q))
	assert.Equal(t, 1.0, eval.RecallAtK{K: 5}.Score(r, q))
	assert.Equal(t, 0.0, eval.RecallAtK{K: 5}.Score(r, qrels()))
}

func TestRPrecision(t *testing.T) {
	r := results("a", "b", "c", "d")
	q := qrels("a", "c")

	assert.Equal(t, 0.5, eval.RPrecision{}.Score(r, q))
	assert.Equal(t, 0.0, eval.RPrecision{}.Score(r, qrels()))
}

func TestFMeasure(t *testing.T) {
	r := results("a", "b", "c", "d")
	q := qrels("a", "z")

	// P@4 = 0.25, R@4 = 0.5
	assert.InDelta(t, 1.0/3.0, eval.F1(4).Score(r, q), 1e-12)
	assert.Equal(t, 0.0, eval.F1(4).Score(r, qrels("z")))
	assert.Equal(t, "f1@4", eval.F1(4).Name())
	assert.Equal(t, "f0.5", eval.FMeasure{Beta: 0.5}.Name())
}

func TestRelevanceGrade(t *testing.T) {
	r := results("a", "b")
	q := qrels("a", "b")
	q["a"].Score = 0

	assert.Equal(t, 1.0, eval.Hits{K: 2}.Score(r, q))
	assert.Equal(t, 1.0, eval.RecallAtK{K: 2}.Score(r, q))
}
