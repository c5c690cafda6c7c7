// Package output provides different formats of output for evaluation results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/hscells/rankeval/eval"
	"github.com/pkg/errors"
)

// EvaluationFormatter formats per-query scores, keyed by topic and metric.
type EvaluationFormatter func(map[string]map[string]float64) (string, error)

// ScoresFormatter formats scores keyed by metric.
type ScoresFormatter func(map[string]float64) (string, error)

// JsonEvaluationFormatter outputs per-query results in a JSON format.
func JsonEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// JsonScoresFormatter outputs scores in a JSON format.
func JsonScoresFormatter(scores map[string]float64) (string, error) {
	v, err := json.MarshalIndent(scores, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs per-query results in CSV format, with a row
// per topic and a column per metric.
func CsvEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	topics := make([]string, 0, len(results))
	metricSet := make(map[string]struct{})
	for topic, scores := range results {
		topics = append(topics, topic)
		for metric := range scores {
			metricSet[metric] = struct{}{}
		}
	}
	eval.SortTopics(topics)
	metrics := sortedKeys(metricSet)

	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write(append([]string{"Topic"}, metrics...)); err != nil {
		return "", errors.Wrap(err, "writing csv header")
	}
	for _, topic := range topics {
		record := make([]string, len(metrics)+1)
		record[0] = topic
		for i, metric := range metrics {
			record[i+1] = strconv.FormatFloat(results[topic][metric], 'f', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return "", errors.Wrapf(err, "writing csv record for topic %s", topic)
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// CsvScoresFormatter outputs scores in CSV format, one metric per row.
func CsvScoresFormatter(scores map[string]float64) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write([]string{"Metric", "Score"}); err != nil {
		return "", errors.Wrap(err, "writing csv header")
	}
	for _, metric := range sortedMetrics(scores) {
		if err := w.Write([]string{metric, strconv.FormatFloat(scores[metric], 'f', -1, 64)}); err != nil {
			return "", errors.Wrapf(err, "writing csv record for %s", metric)
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// TextScoresFormatter outputs a metric and its score per line, separated by
// a tab.
func TextScoresFormatter(scores map[string]float64) (string, error) {
	var b strings.Builder
	for _, metric := range sortedMetrics(scores) {
		b.WriteString(metric)
		b.WriteByte('\t')
		b.WriteString(strconv.FormatFloat(scores[metric], 'f', 4, 64))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// TextEvaluationFormatter outputs per-query results in the style of
// trec_eval -q: metric, topic and score per line.
func TextEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	topics := make([]string, 0, len(results))
	for topic := range results {
		topics = append(topics, topic)
	}
	eval.SortTopics(topics)

	var b strings.Builder
	for _, topic := range topics {
		for _, metric := range sortedMetrics(results[topic]) {
			b.WriteString(metric)
			b.WriteByte('\t')
			b.WriteString(topic)
			b.WriteByte('\t')
			b.WriteString(strconv.FormatFloat(results[topic][metric], 'f', 4, 64))
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func sortedMetrics(scores map[string]float64) []string {
	metrics := make([]string, 0, len(scores))
	for metric := range scores {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)
	return metrics
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
