package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the log file in a text editor",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

// runEdit hands the log file to an interactive editor and passes its exit
// code through. Manual editing is the only supported way to change history.
func runEdit(cmd *cobra.Command, args []string) error {
	cfg := mustConfig()

	editor := exec.Command(cfg.Editor, cfg.File)
	editor.Stdin = os.Stdin
	editor.Stdout = os.Stdout
	editor.Stderr = os.Stderr

	if err := editor.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
