package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/hscells/rankeval"
	"github.com/hscells/rankeval/output"
	"github.com/hscells/rankeval/rank"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// readLists reads the rank lists in a file, as JSON when asJSON is set or the
// file has a .json extension.
func readLists(p string, asJSON bool) ([]rank.List, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if asJSON || strings.EqualFold(filepath.Ext(p), ".json") {
		return rank.ReadJSONLists(f)
	}
	return rank.ReadLists(f)
}

// report is the formatted output of an evaluation.
type report struct {
	summary  map[string]float64
	perQuery map[string]map[string]float64
}

// format renders the report with the named format.
func (r report) format(name string) (string, error) {
	if r.perQuery != nil {
		var f output.EvaluationFormatter
		switch name {
		case "", "json":
			f = output.JsonEvaluationFormatter
		case "csv":
			f = output.CsvEvaluationFormatter
		case "text":
			f = output.TextEvaluationFormatter
		default:
			return "", errors.Errorf("unknown format %q", name)
		}
		return f(r.perQuery)
	}

	var f output.ScoresFormatter
	switch name {
	case "", "json":
		f = output.JsonScoresFormatter
	case "csv":
		f = output.CsvScoresFormatter
	case "text":
		f = output.TextScoresFormatter
	default:
		return "", errors.Errorf("unknown format %q", name)
	}
	return f(r.summary)
}

// evaluateFiles evaluates each file of rank lists. With a single file the
// report holds its scores directly. With several files, scores are keyed by
// file, or by file and query when evaluating per query.
func evaluateFiles(a args, m *rankeval.Metrics, logger zerolog.Logger, progress io.Writer) (report, error) {
	var bar *pb.ProgressBar
	if len(a.Files) > 1 && progress != nil {
		bar = pb.New(len(a.Files)).SetWriter(progress).Start()
		defer bar.Finish()
	}

	var r report
	byFile := make(map[string]map[string]float64)
	for i, p := range a.Files {
		lists, err := readLists(p, a.JSON)
		if err != nil {
			return r, errors.Wrapf(err, "reading %s", p)
		}
		logger.Debug().Str("file", p).Int("queries", len(lists)).Msg("read rank lists")

		if i == 0 {
			if err := writeTrec(a, lists); err != nil {
				return r, err
			}
		}

		if a.PerQuery {
			scores, err := m.EvaluatePerQuery(lists, a.Metrics, a.cutoff())
			if err != nil {
				return r, errors.Wrapf(err, "evaluating %s", p)
			}
			if len(a.Files) == 1 {
				r.perQuery = scores
			} else {
				for topic, s := range scores {
					byFile[fmt.Sprintf("%s:%s", p, topic)] = s
				}
			}
		} else {
			scores, err := m.Evaluate(lists, a.Metrics, a.cutoff())
			if err != nil {
				return r, errors.Wrapf(err, "evaluating %s", p)
			}
			if len(a.Files) == 1 {
				r.summary = scores
			} else {
				byFile[p] = scores
			}
		}

		if bar != nil {
			bar.Increment()
		}
	}

	if len(a.Files) > 1 {
		r.perQuery = byFile
	}
	return r, nil
}

// writeTrec writes the run and qrels generated from lists when requested.
func writeTrec(a args, lists []rank.List) error {
	if len(a.RunOutput) == 0 && len(a.QrelsOutput) == 0 {
		return nil
	}
	run, qrels := rank.Transform(lists, a.cutoff())

	if len(a.RunOutput) > 0 {
		f, err := os.OpenFile(a.RunOutput, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
		if err != nil {
			return errors.Wrap(err, "opening run output")
		}
		defer f.Close()
		if err := output.WriteRun(f, run, a.RunName); err != nil {
			return err
		}
	}

	if len(a.QrelsOutput) > 0 {
		f, err := os.OpenFile(a.QrelsOutput, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
		if err != nil {
			return errors.Wrap(err, "opening qrels output")
		}
		defer f.Close()
		if err := output.WriteQrels(f, qrels); err != nil {
			return err
		}
	}
	return nil
}
