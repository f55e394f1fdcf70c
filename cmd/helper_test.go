package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/fintrack/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// fixedNow is the time returned by now() during tests.
var fixedNow = time.Date(2025, time.March, 10, 12, 30, 23, 0, time.Local)

// testEnv redirects the application to a temporary ledger file and captures
// the standard streams. It returns the ledger path and the captured stdout and stderr.
func testEnv(t *testing.T) (ledger string, out, errOut *bytes.Buffer) {
	t.Helper()
	ledger = filepath.Join(t.TempDir(), "data", "transactions.csv")
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}

	oldApp, oldIn, oldOut, oldErr, oldNow, oldLog := app, stdin, stdout, stderr, now, log.Logger
	t.Cleanup(func() {
		app, stdin, stdout, stderr, now, log.Logger = oldApp, oldIn, oldOut, oldErr, oldNow, oldLog
	})

	app = &config.Config{LedgerFile: ledger}
	stdin = &bytes.Buffer{}
	stdout, stderr = out, errOut
	now = func() time.Time { return fixedNow }
	log.Logger = zerolog.New(errOut)
	return ledger, out, errOut
}

// run executes the command line args as main would.
func run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet("fintrack", flag.ContinueOnError)
	cdr := subcommands.NewCommander(fs, "fintrack")
	cdr.Output, cdr.Error = io.Discard, io.Discard
	Register(cdr)
	require.NoError(t, fs.Parse(args))
	return cdr.Execute(context.Background())
}

// readLedger returns the content of the ledger file, or "" if it does not exist.
func readLedger(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(content)
}

// writeLedger creates the ledger file with content.
func writeLedger(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
