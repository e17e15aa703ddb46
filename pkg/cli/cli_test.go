package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/cli"
	"github.com/secmon-lab/coachnote/pkg/usecase"
)

const janeProfile = `{
  "coacheeName": "Jane Doe",
  "profile": {
    "iamStatements": "I am patient",
    "vision": "Lead a healthy team",
    "pastMeetings": "Met twice in spring",
    "meetingHistory": [{"date": "2024-03-01", "summary": "Set first goals"}]
  }
}`

func storeArgs(dbPath string) []string {
	return []string{"--repository-backend", "sqlite", "--sqlite-path", dbPath, "--device-id", "test"}
}

// runCmd runs command with the store flags placed before any positional args
func runCmd(t *testing.T, dbPath string, command []string, args ...string) error {
	t.Helper()
	full := append([]string{"coachnote", "--log-output", "stderr"}, command...)
	full = append(full, storeArgs(dbPath)...)
	full = append(full, args...)
	return cli.Run(context.Background(), full, "test")
}

func TestRun_ProfileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "coachnote.db")

	profilePath := filepath.Join(dir, "in.json")
	gt.NoError(t, os.WriteFile(profilePath, []byte(janeProfile), 0o600)).Required()

	gt.NoError(t, runCmd(t, dbPath, []string{"profile", "import"}, profilePath)).Required()

	outPath := filepath.Join(dir, "out.json")
	gt.NoError(t, runCmd(t, dbPath, []string{"profile", "export"}, "--out", outPath)).Required()

	data, err := os.ReadFile(outPath)
	gt.NoError(t, err).Required()

	var doc struct {
		CoacheeName string `json:"coacheeName"`
		Profile     struct {
			IamStatements  string `json:"iamStatements"`
			MeetingHistory []struct {
				Date    string `json:"date"`
				Summary string `json:"summary"`
			} `json:"meetingHistory"`
		} `json:"profile"`
	}
	gt.NoError(t, json.Unmarshal(data, &doc)).Required()
	gt.Value(t, doc.CoacheeName).Equal("Jane Doe")
	gt.Value(t, doc.Profile.IamStatements).Equal("I am patient")
	gt.Array(t, doc.Profile.MeetingHistory).Length(1)
	gt.Value(t, doc.Profile.MeetingHistory[0].Summary).Equal("Set first goals")
}

func TestRun_ProfileImport_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "coachnote.db")

	profilePath := filepath.Join(dir, "bad.json")
	gt.NoError(t, os.WriteFile(profilePath, []byte(`{"coacheeName":"Jane"}`), 0o600)).Required()

	err := runCmd(t, dbPath, []string{"profile", "import"}, profilePath)
	gt.Value(t, err).NotNil()
}

func TestRun_Notes(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "coachnote.db")

	profilePath := filepath.Join(dir, "in.json")
	gt.NoError(t, os.WriteFile(profilePath, []byte(janeProfile), 0o600)).Required()
	gt.NoError(t, runCmd(t, dbPath, []string{"profile", "import"}, profilePath)).Required()

	t.Run("writes the notes file", func(t *testing.T) {
		outPath := filepath.Join(dir, "notes.txt")
		gt.NoError(t, runCmd(t, dbPath, []string{"notes"}, "--out", outPath)).Required()

		data, err := os.ReadFile(outPath)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains("Coachee: Jane Doe")
		gt.String(t, string(data)).Contains("I am patient")
	})

	t.Run("prints to stdout", func(t *testing.T) {
		var buf bytes.Buffer
		restore := cli.SetStdoutForTest(&buf)
		defer restore()

		gt.NoError(t, runCmd(t, dbPath, []string{"notes"})).Required()
		gt.String(t, buf.String()).Contains("COACHING SESSION NOTES")
		gt.String(t, buf.String()).Contains("[ENGAGE]")
		gt.String(t, buf.String()).Contains("Coachee: Jane Doe")
	})
}

func TestRun_Reset(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "coachnote.db")

	profilePath := filepath.Join(dir, "in.json")
	gt.NoError(t, os.WriteFile(profilePath, []byte(janeProfile), 0o600)).Required()
	gt.NoError(t, runCmd(t, dbPath, []string{"profile", "import"}, profilePath)).Required()

	t.Run("refuses without confirmation", func(t *testing.T) {
		err := runCmd(t, dbPath, []string{"reset"})
		gt.Error(t, err).Is(usecase.ErrConfirmationRequired)
	})

	t.Run("clears the session with --yes", func(t *testing.T) {
		gt.NoError(t, runCmd(t, dbPath, []string{"reset"}, "--yes")).Required()

		outPath := filepath.Join(dir, "notes.txt")
		gt.NoError(t, runCmd(t, dbPath, []string{"notes"}, "--out", outPath)).Required()
		data, err := os.ReadFile(outPath)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).NotContains("Jane Doe")
	})
}

func TestPrintNotes(t *testing.T) {
	var buf bytes.Buffer
	err := cli.PrintNotes(&buf, []byte("COACHING SESSION NOTES\n\n[PROFILE]\n\nVision:\nN/A\n"))
	gt.NoError(t, err).Required()
	gt.String(t, buf.String()).Contains("[PROFILE]")
	gt.String(t, buf.String()).Contains("Vision:\nN/A\n")
}
