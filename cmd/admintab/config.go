package main

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"admintab"
	nt "admintab/entity"
	"admintab/store"
	"admintab/store/duck"
	"admintab/store/lite"
	"admintab/util"
)

//go:embed sample.yaml
var sample []byte

// Config is the admintab config file.
type Config struct {
	Driver   string          `yaml:"driver"`
	Path     string          `yaml:"path"`
	Operator string          `yaml:"operator"`
	LogPath  string          `yaml:"log_path"`
	Layout   admintab.Layout `yaml:"layout"`
}

// loadConfig reads path, writing the sample there first when missing.
func loadConfig(path string, flags *pflag.FlagSet) (cfg *Config, err error) {

	err = util.SampleConfig(sample, path, 0644)
	if err != nil {
		return
	}

	cfg = &Config{}
	err = util.LoadConfig(cfg, path)
	if err != nil {
		return
	}

	override(cfg, flags)

	if cfg.Operator == "" {
		cfg.Operator = os.Getenv("USER")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = "admintab.log"
	}
	return
}

// override applies flags given on the command line.
func override(cfg *Config, flags *pflag.FlagSet) {

	if flags.Changed("driver") {
		cfg.Driver, _ = flags.GetString("driver")
	}
	if flags.Changed("db") {
		cfg.Path, _ = flags.GetString("db")
	}
	if flags.Changed("operator") {
		cfg.Operator, _ = flags.GetString("operator")
	}
}

// openStore opens the configured backend.
func openStore(cfg *Config, lgr nt.Logger) (acc *store.Accounts, err error) {

	switch cfg.Driver {
	case "", "sqlite":
		acc, err = lite.New(cfg.Path, cfg.Operator, lgr)
	case "duckdb":
		acc, err = duck.New(cfg.Path, cfg.Operator, lgr)
	default:
		err = errors.Errorf("unknown driver %q", cfg.Driver)
	}
	return
}
