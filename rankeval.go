// Package rankeval computes retrieval evaluation metrics from the ranks at
// which relevant documents were retrieved for a set of queries.
package rankeval

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/hscells/rankeval/eval"
	"github.com/hscells/rankeval/rank"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// metricFamilies are the metric families accepted in a family@k metric.
var metricFamilies = [...]string{"map", "mrr", "ndcg", "precision", "recall", "hits", "hit_rate"}

// SupportedMetricFamilies lists the metric families that may be used in a
// family@k metric, such as ndcg@10.
func SupportedMetricFamilies() []string {
	families := make([]string, len(metricFamilies))
	copy(families, metricFamilies[:])
	return families
}

// MetricsEvaluator scores a run against qrels for metrics in family@k form.
// When exactly one metric is requested it may return a single number instead
// of a mapping of metric to score.
type MetricsEvaluator interface {
	Evaluate(qrels trecresults.QrelsFile, run trecresults.ResultFile, metrics []string) (interface{}, error)
}

// QueryEvaluator is a MetricsEvaluator that can also score queries
// individually.
type QueryEvaluator interface {
	EvaluatePerQuery(qrels trecresults.QrelsFile, run trecresults.ResultFile, metrics []string) (map[string]map[string]float64, error)
}

// Metrics evaluates rank lists with a MetricsEvaluator.
type Metrics struct {
	evaluator MetricsEvaluator
	cache     *lru.Cache
}

// WithEvaluator sets the evaluator used to score runs.
func WithEvaluator(evaluator MetricsEvaluator) func(*Metrics) {
	return func(m *Metrics) {
		m.evaluator = evaluator
	}
}

// WithCache keeps the scores of the most recent size evaluations.
func WithCache(size int) func(*Metrics) {
	return func(m *Metrics) {
		if size <= 0 {
			return
		}
		c, err := lru.New(size)
		if err == nil {
			m.cache = c
		}
	}
}

// New creates Metrics using functional options. Without an evaluator,
// eval.Suite is used.
func New(options ...func(*Metrics)) *Metrics {
	m := &Metrics{evaluator: eval.Suite{}}
	for _, option := range options {
		option(m)
	}
	return m
}

var defaultMetrics = New()

// Evaluate computes metrics for the rank lists using eval.Suite.
func Evaluate(lists []rank.List, metrics []string, cutoff int) (map[string]float64, error) {
	return defaultMetrics.Evaluate(lists, metrics, cutoff)
}

// Evaluate computes the metrics, given as family@k, for the rank lists. Ranks
// worse than cutoff are treated as unseen; a cutoff less than one disables
// this. Errors from the evaluator are returned as-is.
func (m *Metrics) Evaluate(lists []rank.List, metrics []string, cutoff int) (map[string]float64, error) {
	var key string
	if m.cache != nil {
		var err error
		key, err = cacheKey("mean", lists, metrics, cutoff)
		if err != nil {
			return nil, err
		}
		if v, ok := m.cache.Get(key); ok {
			return copyScores(v.(map[string]float64)), nil
		}
	}

	run, qrels := rank.Transform(lists, cutoff)
	raw, err := m.evaluator.Evaluate(qrels, run, metrics)
	if err != nil {
		return nil, err
	}

	scores, err := normalise(raw, metrics)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		m.cache.Add(key, copyScores(scores))
	}
	return scores, nil
}

// EvaluatePerQuery computes the metrics for each query, keyed by query index
// and then by metric. The evaluator must implement QueryEvaluator.
func (m *Metrics) EvaluatePerQuery(lists []rank.List, metrics []string, cutoff int) (map[string]map[string]float64, error) {
	qe, ok := m.evaluator.(QueryEvaluator)
	if !ok {
		return nil, errors.Errorf("%T cannot evaluate individual queries", m.evaluator)
	}

	var key string
	if m.cache != nil {
		var err error
		key, err = cacheKey("query", lists, metrics, cutoff)
		if err != nil {
			return nil, err
		}
		if v, ok := m.cache.Get(key); ok {
			return copyQueryScores(v.(map[string]map[string]float64)), nil
		}
	}

	run, qrels := rank.Transform(lists, cutoff)
	scores, err := qe.EvaluatePerQuery(qrels, run, metrics)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		m.cache.Add(key, copyQueryScores(scores))
	}
	return scores, nil
}

// EvaluatePerQuery computes per-query metrics for the rank lists using
// eval.Suite.
func EvaluatePerQuery(lists []rank.List, metrics []string, cutoff int) (map[string]map[string]float64, error) {
	return defaultMetrics.EvaluatePerQuery(lists, metrics, cutoff)
}
