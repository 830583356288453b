package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/samatild/azvmprofilefetcher/internal/config"
	"github.com/samatild/azvmprofilefetcher/internal/exit"
	"github.com/samatild/azvmprofilefetcher/internal/fixture"
	"github.com/samatild/azvmprofilefetcher/internal/logging"
)

func newServeFixtureCmd() *cobra.Command {
	var (
		listen string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "serve-fixture",
		Short: "Serve a fixture instance metadata document for testing off-VM",
		Long: "serve-fixture answers instance metadata requests the way the Azure endpoint does, " +
			"so the report can be previewed with --endpoint http://<listen>/metadata/instance.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool(config.FlagVerbose)
			logFormat, _ := cmd.Flags().GetString(config.FlagLogFormat)
			if err := logging.Setup(verbose, logFormat); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			if !verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			doc, err := fixture.Load(file)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := fixture.Serve(ctx, listen, fixture.NewRouter(doc)); err != nil {
				return exit.New(exit.CodeTransport, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8169", "address to listen on")
	cmd.Flags().StringVar(&file, "file", "", "JSON document to serve (default: built-in sample)")

	return cmd
}
