package cli

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/usecase"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdReset() *cli.Command {
	var yes bool
	var rt runtime

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "Confirm that every session field will be cleared",
			Destination: &yes,
		},
	}
	flags = append(flags, rt.Flags()...)

	return &cli.Command{
		Name:  "reset",
		Usage: "Clear the session and start a new one",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := rt.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			session, err := uc.Session.Reset(ctx, yes)
			if err != nil {
				if errors.Is(err, usecase.ErrConfirmationRequired) {
					return goerr.Wrap(err, "reset clears every field, pass --yes to confirm")
				}
				return goerr.Wrap(err, "failed to reset session")
			}

			logging.Default().Info("Session reset", "date", session.Date)
			return nil
		},
	}
}
