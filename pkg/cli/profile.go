package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdProfile() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Export or import the coachee profile",
		Commands: []*cli.Command{
			cmdProfileExport(),
			cmdProfileImport(),
		},
	}
}

func cmdProfileExport() *cli.Command {
	var out string
	var rt runtime

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Output file (default: <coachee>_Profile.json in the current directory)",
			Destination: &out,
		},
	}
	flags = append(flags, rt.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Append this session to the meeting history and write the profile document",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := rt.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			doc, err := uc.Profile.Export(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to export profile")
			}

			path := out
			if path == "" {
				path = doc.FileName
			}
			if err := writeFile(path, doc.Data); err != nil {
				return err
			}

			logging.Default().Info("Profile exported", "path", path)
			return nil
		},
	}
}

func cmdProfileImport() *cli.Command {
	var rt runtime

	return &cli.Command{
		Name:      "import",
		Usage:     "Load a profile document into the current session",
		ArgsUsage: "<file>",
		Flags:     rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return goerr.New("profile file is required")
			}

			// #nosec G304 - path is provided by CLI argument
			data, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read profile file", goerr.V("path", path))
			}

			uc, closeRepo, err := rt.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			session, err := uc.Profile.Import(ctx, data)
			if err != nil {
				return goerr.Wrap(err, "failed to import profile", goerr.V("path", path))
			}

			logging.Default().Info("Profile imported",
				"path", path,
				"coachee", session.CoacheeName,
				"meeting_history", len(session.Profile.MeetingHistory),
			)
			return nil
		},
	}
}
