package scaffold

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog"
)

// GitInit is the default GitRunner. It runs "git init" in dir, skipping
// directories that already contain a repository. Callers treat any returned
// error as a warning, never as a fatal condition.
func GitInit(logger *zerolog.Logger, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		logger.Debug().Msgf("Directory %s is already a git repository", dir)
		return nil
	}

	return runCommand(logger, dir, "git", "init")
}

func runCommand(logger *zerolog.Logger, dir, command string, args ...string) error {
	logger.Debug().Msgf("Running command: %s %v in directory: %s", command, args, dir)

	cmd := exec.Command(command, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %v failed: %w\n%s", command, args, err, output)
	}

	logger.Debug().Msgf("Command succeeded: %s %v", command, args)
	return nil
}
