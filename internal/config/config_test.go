package config

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"

	"github.com/samatild/azvmprofilefetcher/internal/imds"
	"github.com/samatild/azvmprofilefetcher/internal/output"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FlagOutput, "", "")
	flags.String(FlagFormat, "report", "")
	flags.Bool(FlagVerbose, false, "")
	flags.String(FlagLogFormat, "text", "")
	flags.String(FlagEndpoint, imds.DefaultEndpoint, "")
	flags.String(FlagAPIVersion, imds.DefaultAPIVersion, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != output.ModeReport {
		t.Fatalf("expected report mode, got %s", cfg.Mode)
	}
	if cfg.OutputPath != "" {
		t.Fatalf("expected stdout by default, got %q", cfg.OutputPath)
	}
	if cfg.Endpoint != imds.DefaultEndpoint || cfg.APIVersion != imds.DefaultAPIVersion {
		t.Fatalf("unexpected endpoint %s?api-version=%s", cfg.Endpoint, cfg.APIVersion)
	}
}

func TestLoadFromFlags(t *testing.T) {
	flags := newFlags()
	if err := flags.Parse([]string{"--output", "~/report.txt", "--format", "YAML", "--verbose", "--endpoint", "http://127.0.0.1:8169/metadata/instance"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, err := homedir.Dir()
	if err != nil {
		t.Fatalf("homedir: %v", err)
	}
	if want := filepath.Join(home, "report.txt"); cfg.OutputPath != want {
		t.Fatalf("expected %q, got %q", want, cfg.OutputPath)
	}
	if cfg.Mode != output.ModeYAML || !cfg.Verbose {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Endpoint != "http://127.0.0.1:8169/metadata/instance" {
		t.Fatalf("unexpected endpoint %q", cfg.Endpoint)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"format":      {"--format", "table"},
		"endpoint":    {"--endpoint", "ftp://example"},
		"api-version": {"--api-version", " "},
	}
	for name, args := range cases {
		flags := newFlags()
		if err := flags.Parse(args); err != nil {
			t.Fatalf("%s: parse: %v", name, err)
		}
		if _, err := Load(flags); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
