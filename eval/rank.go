package eval

import (
	"github.com/hscells/trecresults"
	"math"
	"sort"
)

// ReciprocalRank is the inverse position of the first relevant document in
// the top K. Averaged over queries it is the mean reciprocal rank.
type ReciprocalRank struct{ K int }

// AP is average precision at K. Averaged over queries it is mean average
// precision.
type AP struct{ K int }

// DCG is discounted cumulative gain at K.
type DCG struct{ K int }

// NDCG is DCG at K normalised by the DCG of an ideal ranking.
type NDCG struct{ K int }

func (e ReciprocalRank) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	for i, res := range top(results, e.K) {
		if isRelevant(qrels, res.DocId) {
			return 1 / float64(i+1)
		}
	}
	return 0
}

func (e ReciprocalRank) Name() string {
	return withK("mrr", e.K)
}

func (e AP) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	R := numRel(qrels)
	if R == 0 {
		return 0
	}
	var sum, hits float64
	for i, res := range top(results, e.K) {
		if isRelevant(qrels, res.DocId) {
			hits++
			sum += hits / float64(i+1)
		}
	}
	return sum / R
}

func (e AP) Name() string {
	return withK("map", e.K)
}

func (e DCG) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	var score float64
	for i, item := range top(results, e.K) {
		if qrel, ok := qrels[item.DocId]; ok && qrel.Score > 0 {
			score += float64(qrel.Score) / math.Log2(float64(i)+2)
		}
	}
	return score
}

func (e DCG) Name() string {
	return withK("dcg", e.K)
}

func (e NDCG) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	// Compute ideal discounted cumulative gain.
	ideal := make(trecresults.ResultList, 0, len(qrels))
	for _, rel := range qrels {
		if rel.Score <= 0 {
			continue
		}
		ideal = append(ideal, &trecresults.Result{
			Topic: rel.Topic,
			DocId: rel.DocId,
			Score: float64(rel.Score),
		})
	}
	sort.SliceStable(ideal, func(i, j int) bool {
		if ideal[i].Score != ideal[j].Score {
			return ideal[i].Score > ideal[j].Score
		}
		return ideal[i].DocId < ideal[j].DocId
	})

	idcg := DCG{K: e.K}.Score(&ideal, qrels)
	if idcg == 0 {
		return 0
	}
	return DCG{K: e.K}.Score(results, qrels) / idcg
}

func (e NDCG) Name() string {
	return withK("ndcg", e.K)
}
