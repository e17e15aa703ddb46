package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

var stdout io.Writer = os.Stdout

func cmdNotes() *cli.Command {
	var out string
	var rt runtime

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Write the notes file here instead of printing them",
			Destination: &out,
		},
	}
	flags = append(flags, rt.Flags()...)

	return &cli.Command{
		Name:  "notes",
		Usage: "Print the full notes of the current session",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := rt.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			notes := uc.Notes.Render(ctx)
			if out != "" {
				if err := writeFile(out, notes.Data); err != nil {
					return err
				}
				logging.Default().Info("Notes written", "path", out)
				return nil
			}

			return printNotes(stdout, notes.Data)
		},
	}
}

// printNotes highlights the title and the bracketed section headers
func printNotes(w io.Writer, data []byte) error {
	title := color.New(color.FgHiWhite, color.Bold)
	section := color.New(color.FgCyan, color.Bold)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		var err error
		switch {
		case line == "COACHING SESSION NOTES":
			_, err = title.Fprintln(w, line)
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			_, err = section.Fprintln(w, line)
		default:
			_, err = io.WriteString(w, line+"\n")
		}
		if err != nil {
			return goerr.Wrap(err, "failed to print notes")
		}
	}
	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read notes")
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}
	return nil
}
