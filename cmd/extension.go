package cmd

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Environment passed to extensions. They match the configuration keys so that
// an extension loading the configuration sees the same ledger.
const (
	EnvLedgerFile = "FINTRACK_LEDGER_FILE"
	EnvVerbose    = "FINTRACK_VERBOSE"
)

// ExtensionPrefix prefixes the name of external fintrack-<subcommand> binaries.
const ExtensionPrefix = "fintrack-"

// RunExtension attempts to find and execute an external fintrack-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass the resolved configuration down.
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+app.LedgerFile,
		EnvVerbose+"="+strconv.FormatBool(app.Verbose),
	)

	log.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		log.Error().Err(err).Str("extension", name).Msg("cannot execute extension")
		return true, 1
	}
	return true, 0
}

// IsCommand reports whether name is a subcommand registered by Register.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
