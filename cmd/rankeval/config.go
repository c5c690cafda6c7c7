package main

import (
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configName = ".rankeval"

// config holds defaults for flags that were not set on the command line.
type config struct {
	Metrics []string `toml:"metrics"`
	Cutoff  *int     `toml:"cutoff"`
	Format  string   `toml:"format"`
	RunName string   `toml:"run_name"`
}

// loadConfig reads the config at p. When p is empty, ~/.rankeval is read if
// it exists.
func loadConfig(p string) (config, error) {
	var c config
	if len(p) == 0 {
		dir, err := os.UserHomeDir()
		if err != nil {
			return c, nil
		}
		p = path.Join(dir, configName)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return c, nil
		}
	}

	if _, err := toml.DecodeFile(p, &c); err != nil {
		return c, errors.Wrapf(err, "reading config %s", p)
	}
	return c, nil
}

// apply fills unset arguments from the config.
func (c config) apply(a *args) {
	if len(a.Metrics) == 0 {
		a.Metrics = c.Metrics
	}
	if a.Cutoff == nil {
		a.Cutoff = c.Cutoff
	}
	if len(a.Format) == 0 {
		a.Format = c.Format
	}
	if len(a.RunName) == 0 {
		a.RunName = c.RunName
	}
}
