package cmd

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show the particle page in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, args []string) error {
	// Log lines would tear the screen, so they go nowhere without a file.
	closeLog, err := setupLog(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	term.New(screen, newSource()).Run()
	return nil
}
