package rankeval

import (
	"encoding/json"

	"github.com/hscells/rankeval/rank"
	"github.com/pkg/errors"
)

// normalise converts the output of an evaluator into a mapping of metric to
// score. Evaluators may return a bare number when a single metric is
// requested, which is keyed by that metric.
func normalise(raw interface{}, metrics []string) (map[string]float64, error) {
	switch v := raw.(type) {
	case map[string]float64:
		return copyScores(v), nil
	case map[string]float32:
		scores := make(map[string]float64, len(v))
		for name, score := range v {
			scores[name] = float64(score)
		}
		return scores, nil
	case map[string]int:
		scores := make(map[string]float64, len(v))
		for name, score := range v {
			scores[name] = float64(score)
		}
		return scores, nil
	case map[string]interface{}:
		scores := make(map[string]float64, len(v))
		for name, score := range v {
			f, ok := toFloat(score)
			if !ok {
				return nil, errors.Errorf("evaluator returned %T for %s", score, name)
			}
			scores[name] = f
		}
		return scores, nil
	}

	f, ok := toFloat(raw)
	if !ok {
		return nil, errors.Errorf("evaluator returned %T", raw)
	}
	if len(metrics) != 1 {
		return nil, errors.Errorf("evaluator returned a single score for %d metrics", len(metrics))
	}
	return map[string]float64{metrics[0]: f}, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func copyScores(scores map[string]float64) map[string]float64 {
	c := make(map[string]float64, len(scores))
	for k, v := range scores {
		c[k] = v
	}
	return c
}

func copyQueryScores(scores map[string]map[string]float64) map[string]map[string]float64 {
	c := make(map[string]map[string]float64, len(scores))
	for topic, s := range scores {
		c[topic] = copyScores(s)
	}
	return c
}

// cacheKey identifies an evaluation by everything that can change its result.
// The key is JSON so metric names cannot run into the rank lists.
func cacheKey(kind string, lists []rank.List, metrics []string, cutoff int) (string, error) {
	b, err := json.Marshal(struct {
		Kind    string      `json:"kind"`
		Cutoff  int         `json:"cutoff"`
		Metrics []string    `json:"metrics"`
		Lists   []rank.List `json:"lists"`
	}{kind, cutoff, metrics, lists})
	if err != nil {
		return "", errors.Wrap(err, "building cache key")
	}
	return string(b), nil
}
