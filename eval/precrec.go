package eval

import (
	"github.com/hscells/trecresults"
	"math"
)

// Hits is the number of relevant documents in the top K.
type Hits struct{ K int }

// HitRate is one when any relevant document is in the top K, otherwise zero.
type HitRate struct{ K int }

// PrecisionAtK is the proportion of the top K that is relevant.
type PrecisionAtK struct{ K int }

// RecallAtK is the proportion of the relevant documents found in the top K.
type RecallAtK struct{ K int }

// RPrecision is precision at R, the number of relevant documents.
type RPrecision struct{}

// FMeasure computes f-measure at K, with the beta parameter controlling the
// precision and recall trade-off.
type FMeasure struct {
	Beta float64
	K    int
}

// F1 creates an f-measure with beta=1.
func F1(k int) FMeasure {
	return FMeasure{Beta: 1, K: k}
}

func (e Hits) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	return numRelRet(results, qrels, e.K)
}

func (e Hits) Name() string {
	return withK("hits", e.K)
}

func (e HitRate) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	if numRelRet(results, qrels, e.K) > 0 {
		return 1
	}
	return 0
}

func (e HitRate) Name() string {
	return withK("hit_rate", e.K)
}

func (e PrecisionAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	// Precision is always over K, even when fewer documents were retrieved.
	k := float64(e.K)
	if e.K <= 0 {
		k = float64(len(*results))
	}
	if k == 0 {
		return 0
	}
	return numRelRet(results, qrels, e.K) / k
}

func (e PrecisionAtK) Name() string {
	return withK("precision", e.K)
}

func (e RecallAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	rel := numRel(qrels)
	if rel == 0 {
		return 0
	}
	return numRelRet(results, qrels, e.K) / rel
}

func (e RecallAtK) Name() string {
	return withK("recall", e.K)
}

func (e RPrecision) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	rel := numRel(qrels)
	if rel == 0 {
		return 0
	}
	return PrecisionAtK{K: int(rel)}.Score(results, qrels)
}

func (e RPrecision) Name() string {
	return "r-precision"
}

// Score uses the beta parameter to compute f-measure.
func (f FMeasure) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	precision := PrecisionAtK{K: f.K}.Score(results, qrels)
	recall := RecallAtK{K: f.K}.Score(results, qrels)
	if precision == 0 || recall == 0 {
		return 0
	}
	betaSquared := math.Pow(f.Beta, 2)
	return ((1 + betaSquared) * (precision * recall)) / ((betaSquared * precision) + recall)
}

// Name is f1 for beta=1, and includes the beta parameter otherwise.
func (f FMeasure) Name() string {
	if f.Beta == 1 {
		return withK("f1", f.K)
	}
	return withK("f"+trimFloat(f.Beta), f.K)
}
