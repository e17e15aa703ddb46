package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/cli/config"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var appCfg config.App

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the configuration file",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if appCfg.Path() == "" {
				return goerr.Wrap(config.ErrConfigNotFound, "--config is required")
			}

			cfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logging.Default().Info("Configuration validation passed",
				"path", appCfg.Path(),
				"coach", cfg.Coach.Name,
				"model", cfg.Model(),
				"timezone", cfg.Location().String(),
				"embed_timezone", cfg.EmbedTimezone(),
				"engage_overrides", len(cfg.Labels.Engage),
				"express_overrides", len(cfg.Labels.Express),
			)
			return nil
		},
	}
}
