package cmd

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samatild/azvmprofilefetcher/internal/config"
	"github.com/samatild/azvmprofilefetcher/internal/exit"
	"github.com/samatild/azvmprofilefetcher/internal/imds"
	"github.com/samatild/azvmprofilefetcher/internal/logging"
	"github.com/samatild/azvmprofilefetcher/internal/output"
	"github.com/samatild/azvmprofilefetcher/internal/report"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "azvmprofile",
		Short:         "Show the instance metadata profile of the current Azure VM",
		Long:          "azvmprofile queries the Azure instance metadata endpoint and prints a sectioned report of the VM, its disks and its network interfaces.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			if err := logging.Setup(cfg.Verbose, cfg.LogFormat); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return runReport(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().BoolP(config.FlagVerbose, "v", false, "enable verbose logging")
	cmd.PersistentFlags().String(config.FlagLogFormat, "text", "log format: text|json")

	cmd.Flags().String(config.FlagOutput, "", "append the report to this file instead of printing it (disables colors)")
	cmd.Flags().String(config.FlagFormat, string(output.ModeReport), "output format: report|json|yaml")
	cmd.Flags().String(config.FlagEndpoint, imds.DefaultEndpoint, "instance metadata endpoint")
	cmd.Flags().String(config.FlagAPIVersion, imds.DefaultAPIVersion, "instance metadata api-version")
	_ = cmd.Flags().MarkHidden(config.FlagEndpoint)
	_ = cmd.Flags().MarkHidden(config.FlagAPIVersion)

	cmd.AddCommand(newServeFixtureCmd())

	return cmd
}

func runReport(ctx context.Context, cfg config.Config, stdout io.Writer) (err error) {
	client, err := imds.NewClient(imds.Options{Endpoint: cfg.Endpoint, APIVersion: cfg.APIVersion})
	if err != nil {
		return exit.New(exit.CodeUsage, err)
	}

	sink, err := openSink(cfg, stdout)
	if err != nil {
		return exit.New(exit.CodeOutput, err)
	}
	defer func() {
		if closeErr := sink.Close(); closeErr != nil && err == nil {
			err = exit.New(exit.CodeOutput, closeErr)
		}
	}()

	doc, err := client.Fetch(ctx)
	if err != nil {
		return exit.FromFetch(err)
	}
	log.WithField("format", cfg.Mode).Debug("rendering instance metadata")

	switch cfg.Mode {
	case output.ModeJSON:
		err = output.EmitJSON(sink, doc)
	case output.ModeYAML:
		err = output.EmitYAML(sink, doc)
	default:
		err = report.Render(doc, sink)
	}
	if err != nil {
		return exit.New(exit.CodeOutput, err)
	}
	return nil
}

func openSink(cfg config.Config, stdout io.Writer) (output.Sink, error) {
	if cfg.OutputPath == "" {
		return output.NewConsoleSink(stdout), nil
	}
	log.WithField("path", cfg.OutputPath).Debug("appending report to file")
	return output.OpenFileSink(cfg.OutputPath)
}
