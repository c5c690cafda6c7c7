package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hscells/rankeval"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0664))
	return p
}

func TestEvaluateFilesSingle(t *testing.T) {
	dir := t.TempDir()
	ranks := writeFile(t, dir, "ranks.txt", "3 5\n")

	a := args{Files: []string{ranks}, Metrics: []string{"recall@3", "recall@5"}}
	r, err := evaluateFiles(a, rankeval.New(), zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"recall@3": 0.5, "recall@5": 1}, r.summary)
	assert.Nil(t, r.perQuery)

	s, err := r.format("text")
	require.NoError(t, err)
	assert.Equal(t, "recall@3\t0.5000\nrecall@5\t1.0000\n", s)
}

func TestEvaluateFilesJSONPerQuery(t *testing.T) {
	dir := t.TempDir()
	ranks := writeFile(t, dir, "ranks.json", "[[2], [1, -1]]")

	a := args{Files: []string{ranks}, Metrics: []string{"hit_rate@1"}, PerQuery: true}
	r, err := evaluateFiles(a, rankeval.New(), zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]float64{
		"0": {"hit_rate@1": 0},
		"1": {"hit_rate@1": 1},
	}, r.perQuery)

	s, err := r.format("csv")
	require.NoError(t, err)
	assert.Equal(t, "Topic,hit_rate@1\n0,0\n1,1\n", s)
}

func TestEvaluateFilesMultiple(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n")
	b := writeFile(t, dir, "b.txt", "2\n")

	r, err := evaluateFiles(args{Files: []string{a, b}, Metrics: []string{"mrr@2"}}, rankeval.New(), zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]float64{
		a: {"mrr@2": 1},
		b: {"mrr@2": 0.5},
	}, r.perQuery)
}

func TestEvaluateFilesTrecOutput(t *testing.T) {
	dir := t.TempDir()
	ranks := writeFile(t, dir, "ranks.txt", "2 -1\n")
	runPath := filepath.Join(dir, "run.txt")
	qrelsPath := filepath.Join(dir, "qrels.txt")

	a := args{
		Files:       []string{ranks},
		Metrics:     []string{"map@2"},
		RunOutput:   runPath,
		QrelsOutput: qrelsPath,
		RunName:     "test",
	}
	_, err := evaluateFiles(a, rankeval.New(), zerolog.Nop(), nil)
	require.NoError(t, err)

	run, err := os.ReadFile(runPath)
	require.NoError(t, err)
	assert.Equal(t, "0 Q0 doc1 1 2 test\n0 Q0 doc2 2 1 test\n", string(run))

	qrels, err := os.ReadFile(qrelsPath)
	require.NoError(t, err)
	assert.Equal(t, "0 0 doc2 1\n0 0 doc3 1\n", string(qrels))
}

func TestEvaluateFilesErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "1 zero\n")
	good := writeFile(t, dir, "good.txt", "1\n")

	_, err := evaluateFiles(args{Files: []string{bad}, Metrics: []string{"map@1"}}, rankeval.New(), zerolog.Nop(), nil)
	assert.Error(t, err)

	_, err = evaluateFiles(args{Files: []string{good}, Metrics: []string{"unknown@1"}}, rankeval.New(), zerolog.Nop(), nil)
	assert.Error(t, err)

	_, err = evaluateFiles(args{Files: []string{filepath.Join(dir, "missing.txt")}, Metrics: []string{"map@1"}}, rankeval.New(), zerolog.Nop(), nil)
	assert.Error(t, err)
}

func TestReportUnknownFormat(t *testing.T) {
	_, err := report{summary: map[string]float64{}}.format("xml")
	assert.Error(t, err)
	_, err = report{perQuery: map[string]map[string]float64{}}.format("xml")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "rankeval.toml", `metrics = ["ndcg@10", "map@10"]
cutoff = 10
format = "csv"
run_name = "baseline"
`)

	c, err := loadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"ndcg@10", "map@10"}, c.Metrics)
	require.NotNil(t, c.Cutoff)
	assert.Equal(t, 10, *c.Cutoff)
	assert.Equal(t, "csv", c.Format)
	assert.Equal(t, "baseline", c.RunName)

	a := args{Metrics: []string{"recall@5"}}
	c.apply(&a)
	assert.Equal(t, []string{"recall@5"}, a.Metrics)
	assert.Equal(t, 10, a.cutoff())
	assert.Equal(t, "csv", a.Format)
	assert.Equal(t, "baseline", a.RunName)

	_, err = loadConfig(writeFile(t, dir, "broken.toml", "metrics = ["))
	assert.Error(t, err)
}

func TestExplicitZeroCutoffKept(t *testing.T) {
	p := writeFile(t, t.TempDir(), "rankeval.toml", "cutoff = 3\n")
	c, err := loadConfig(p)
	require.NoError(t, err)

	zero := 0
	a := args{Cutoff: &zero}
	c.apply(&a)
	assert.Equal(t, 0, a.cutoff())

	a = args{}
	config{}.apply(&a)
	assert.Equal(t, -1, a.cutoff())

	// Rank 5 only counts when the cutoff from the config is overridden.
	ranks := writeFile(t, t.TempDir(), "ranks.txt", "1 5\n")
	r, err := evaluateFiles(args{Files: []string{ranks}, Metrics: []string{"recall@5"}, Cutoff: &zero}, rankeval.New(), zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"recall@5": 1}, r.summary)

	a = args{Files: []string{ranks}, Metrics: []string{"recall@5"}}
	c.apply(&a)
	r, err = evaluateFiles(a, rankeval.New(), zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"recall@5": 0.5}, r.summary)
}
