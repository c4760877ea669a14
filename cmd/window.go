package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/game"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the particle page in a desktop window (default)",
	Args:  cobra.NoArgs,
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLog(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g := game.New(newSource())
	if err := game.Run(g); err != nil && !errors.Is(err, ebiten.Termination) {
		err = fmt.Errorf("run window: %w", err)
		// Launched from a desktop there may be no terminal to print to.
		_ = zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon)
		return err
	}
	return nil
}
