package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/primeasset/recruit-landing/pkg/clients/leadsink"
	"github.com/primeasset/recruit-landing/pkg/config"
	"github.com/primeasset/recruit-landing/pkg/logger"
)

// NewRootCommand builds the command tree. Running it without a subcommand
// serves the site.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "recruit-landing",
		Short: "Prime Asset recruitment landing site",
		Long: `Serves the Prime Asset recruitment landing page and forwards applicant
leads to the configured intake endpoint (LEAD_ENDPOINT_URL).`,
		SilenceUsage: true,
	}

	serve := newServeCommand()
	root.RunE = serve.RunE
	root.AddCommand(serve, newSendCommand())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// bootstrap loads config and builds the lead sink. The sink is nil when no
// endpoint is configured.
func bootstrap() (*config.Config, leadsink.Client, *slog.Logger, error) {
	log := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	if !cfg.EndpointConfigured() {
		log.Warn("LEAD_ENDPOINT_URL is not set; lead submissions will be blocked")
		return cfg, nil, log, nil
	}

	mode, err := cfg.DeliveryMode()
	if err != nil {
		return nil, nil, nil, err
	}
	if mode == leadsink.ModeOpaque {
		log.Warn("lead delivery mode is opaque: endpoint responses are not inspected, rejected leads will look delivered")
	}

	sink, err := leadsink.NewClient(leadsink.Options{
		Endpoint: cfg.LeadEndpointURL,
		Mode:     mode,
		Timeout:  cfg.LeadDispatchTimeout,
		Logger:   log,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, sink, log, nil
}
