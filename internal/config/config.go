package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/samatild/azvmprofilefetcher/internal/imds"
	"github.com/samatild/azvmprofilefetcher/internal/output"
)

// Flag names shared by the commands and Load.
const (
	FlagOutput     = "output"
	FlagFormat     = "format"
	FlagVerbose    = "verbose"
	FlagLogFormat  = "log-format"
	FlagEndpoint   = "endpoint"
	FlagAPIVersion = "api-version"
)

// Config is the resolved run configuration. It only ever comes from flags.
type Config struct {
	OutputPath string
	Mode       output.Mode
	Verbose    bool
	LogFormat  string
	Endpoint   string
	APIVersion string
}

// Load resolves Config from flags. Environment variables and configuration
// files are not consulted.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(FlagFormat, string(output.ModeReport))
	v.SetDefault(FlagLogFormat, "text")
	v.SetDefault(FlagEndpoint, imds.DefaultEndpoint)
	v.SetDefault(FlagAPIVersion, imds.DefaultAPIVersion)
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	mode, err := output.ParseMode(strings.ToLower(v.GetString(FlagFormat)))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Mode:       mode,
		Verbose:    v.GetBool(FlagVerbose),
		LogFormat:  v.GetString(FlagLogFormat),
		Endpoint:   strings.TrimSpace(v.GetString(FlagEndpoint)),
		APIVersion: strings.TrimSpace(v.GetString(FlagAPIVersion)),
	}

	if raw := strings.TrimSpace(v.GetString(FlagOutput)); raw != "" {
		expanded, err := homedir.Expand(raw)
		if err != nil {
			return Config{}, fmt.Errorf("resolve output path: %w", err)
		}
		cfg.OutputPath = expanded
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.APIVersion == "" {
		return fmt.Errorf("api-version must not be empty")
	}
	parsed, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	return nil
}
