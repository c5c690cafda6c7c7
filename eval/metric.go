package eval

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownMetric is returned for a metric family that is not supported.
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrMalformedMetric is returned for a metric that is not of the form family@k.
	ErrMalformedMetric = errors.New("malformed metric")
)

// families maps a metric family to a constructor taking the cutoff.
var families = map[string]func(k int) Evaluator{
	"hits":      func(k int) Evaluator { return Hits{K: k} },
	"hit_rate":  func(k int) Evaluator { return HitRate{K: k} },
	"precision": func(k int) Evaluator { return PrecisionAtK{K: k} },
	"recall":    func(k int) Evaluator { return RecallAtK{K: k} },
	"f1":        func(k int) Evaluator { return F1(k) },
	"mrr":       func(k int) Evaluator { return ReciprocalRank{K: k} },
	"map":       func(k int) Evaluator { return AP{K: k} },
	"dcg":       func(k int) Evaluator { return DCG{K: k} },
	"ndcg":      func(k int) Evaluator { return NDCG{K: k} },
}

// ParseMetric creates an evaluator from a metric of the form family@k, for
// example ndcg@10. Without @k the whole result list is evaluated.
func ParseMetric(metric string) (Evaluator, error) {
	family, cutoff, hasCutoff := strings.Cut(metric, "@")
	if len(family) == 0 {
		return nil, errors.Wrapf(ErrMalformedMetric, "%q", metric)
	}

	k := 0
	if hasCutoff {
		var err error
		k, err = strconv.Atoi(cutoff)
		if err != nil || k < 1 {
			return nil, errors.Wrapf(ErrMalformedMetric, "%q: cutoff must be a positive integer", metric)
		}
	}

	if family == "r-precision" {
		if hasCutoff {
			return nil, errors.Wrapf(ErrMalformedMetric, "%q: r-precision does not take a cutoff", metric)
		}
		return RPrecision{}, nil
	}

	newEvaluator, ok := families[family]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMetric, "%q", family)
	}
	return newEvaluator(k), nil
}

// ParseMetrics parses each of the metrics with ParseMetric.
func ParseMetrics(metrics []string) ([]Evaluator, error) {
	evaluators := make([]Evaluator, len(metrics))
	for i, metric := range metrics {
		e, err := ParseMetric(metric)
		if err != nil {
			return nil, err
		}
		evaluators[i] = e
	}
	return evaluators, nil
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
