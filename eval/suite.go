package eval

import (
	"github.com/hscells/trecresults"
	"gonum.org/v1/gonum/stat"
)

// Suite evaluates a run against qrels for metrics given in family@k form. Each
// topic in the qrels is scored and the scores are averaged over topics. A
// topic missing from the run retrieved nothing.
type Suite struct{}

// Evaluate returns the mean score over topics. When a single metric is
// requested the score is returned as a float64, otherwise as a
// map[string]float64 keyed by metric.
func (s Suite) Evaluate(qrels trecresults.QrelsFile, run trecresults.ResultFile, metrics []string) (interface{}, error) {
	perQuery, err := s.EvaluatePerQuery(qrels, run, metrics)
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(perQuery))
	for topic := range perQuery {
		topics = append(topics, topic)
	}
	SortTopics(topics)

	means := make(map[string]float64, len(metrics))
	for _, metric := range metrics {
		if len(topics) == 0 {
			means[metric] = 0
			continue
		}
		values := make([]float64, len(topics))
		for i, topic := range topics {
			values[i] = perQuery[topic][metric]
		}
		means[metric] = stat.Mean(values, nil)
	}

	if len(metrics) == 1 {
		return means[metrics[0]], nil
	}
	return means, nil
}

// EvaluatePerQuery scores every topic in the qrels, keyed by topic and then
// by metric.
func (Suite) EvaluatePerQuery(qrels trecresults.QrelsFile, run trecresults.ResultFile, metrics []string) (map[string]map[string]float64, error) {
	evaluators, err := ParseMetrics(metrics)
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(qrels.Qrels))
	for topic := range qrels.Qrels {
		topics = append(topics, topic)
	}
	SortTopics(topics)
	return scoreTopics(topics, metrics, evaluators, run, qrels), nil
}
