package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "admintab/entity"
)

func TestRenderAccounts(t *testing.T) {

	buf := &bytes.Buffer{}
	renderAccounts(buf, nil)
	assert.Equal(t, "(no accounts)\n", buf.String())

	buf.Reset()
	renderAccounts(buf, []nt.Account{
		{Account: "svc1", Name: "Service One", Role: nt.Updater},
		{Account: "svc2", Name: "Service Two", Role: nt.Builder},
	})

	out := buf.String()
	assert.Contains(t, out, "ACCOUNT")
	assert.Contains(t, out, "svc1")
	assert.Contains(t, out, "Service Two")
	assert.Contains(t, out, "Builder")
}

func TestLoadConfig(t *testing.T) {

	path := filepath.Join(t.TempDir(), "admintab.yaml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("driver", "", "")
	flags.String("db", "", "")
	flags.String("operator", "", "")
	require.NoError(t, flags.Parse([]string{"--db", "", "--operator", "tester"}))

	cfg, err := loadConfig(path, flags)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err, "sample written")

	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "", cfg.Path)
	assert.Equal(t, "tester", cfg.Operator)
	assert.Equal(t, "admintab.log", cfg.LogPath)
	require.Len(t, cfg.Layout.Columns, 3)
	assert.Equal(t, "Full Name", cfg.Layout.Columns[1].Header)
}

func TestOpenStore(t *testing.T) {

	_, err := openStore(&Config{Driver: "oracle"}, nil)
	assert.EqualError(t, err, `unknown driver "oracle"`)

	svc, err := openStore(&Config{Driver: "sqlite", Operator: "tester"}, nil)
	require.NoError(t, err)
	defer svc.Close()
	assert.Equal(t, "sqlite", svc.Name())
}
