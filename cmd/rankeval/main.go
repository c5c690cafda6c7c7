package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/hscells/rankeval"
	"github.com/rs/zerolog"
)

var (
	name    = "rankeval"
	version = "18.Oct.2026"
)

type args struct {
	Metrics     []string `help:"Metrics to compute, as family@k (e.g. ndcg@10)" arg:"-m,separate"`
	Cutoff      *int     `help:"Ranks worse than this are treated as unseen; zero or negative disables" arg:"-k"`
	Config      string   `help:"Path to config file (default ~/.rankeval)" arg:"-c"`
	Format      string   `help:"Output format: json, csv or text" arg:"-f"`
	PerQuery    bool     `help:"Output scores for each query" arg:"-q"`
	JSON        bool     `help:"Read rank lists as JSON" arg:"--json"`
	RunOutput   string   `help:"Write the generated run of the first file in TREC format" arg:"--run"`
	QrelsOutput string   `help:"Write the generated qrels of the first file in TREC format" arg:"--qrels"`
	RunName     string   `help:"Run name used in the TREC run output" arg:"--run-name"`
	Output      string   `help:"Write scores to a file instead of stdout" arg:"-o"`
	CacheSize   int      `help:"Number of evaluations to cache" arg:"--cache"`
	Families    bool     `help:"List the supported metric families and exit" arg:"--families"`
	Quiet       bool     `help:"Only log errors" arg:"--quiet"`
	Verbose     bool     `help:"Log debugging information" arg:"-v"`
	Files       []string `help:"Rank list files, one query per line" arg:"positional"`
}

// cutoff is the rank cutoff, or -1 when none was given.
func (a args) cutoff() int {
	if a.Cutoff == nil {
		return -1
	}
	return *a.Cutoff
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
computes retrieval metrics from the ranks of relevant documents`, name)
}

func main() {
	var a args
	p := arg.MustParse(&a)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	switch {
	case a.Quiet:
		logger = logger.Level(zerolog.ErrorLevel)
	case a.Verbose:
		logger = logger.Level(zerolog.DebugLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}

	if a.Families {
		fmt.Println(strings.Join(rankeval.SupportedMetricFamilies(), "\n"))
		return
	}

	c, err := loadConfig(a.Config)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load config")
	}
	c.apply(&a)

	if len(a.Files) == 0 {
		p.Fail("at least one rank list file is required")
	}
	if len(a.Metrics) == 0 {
		p.Fail("nothing to do, no metrics given")
	}

	m := rankeval.New(rankeval.WithCache(a.CacheSize))

	logger.Info().Strs("metrics", a.Metrics).Int("cutoff", a.cutoff()).Int("files", len(a.Files)).Msg("evaluating")
	var progress io.Writer
	if !a.Quiet {
		progress = os.Stderr
	}
	r, err := evaluateFiles(a, m, logger, progress)
	if err != nil {
		logger.Fatal().Err(err).Msg("evaluation failed")
	}

	s, err := r.format(a.Format)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not format scores")
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	if len(a.Output) > 0 {
		err = os.WriteFile(a.Output, []byte(s), 0664)
	} else {
		_, err = os.Stdout.WriteString(s)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("could not write scores")
	}
}
