package cmd

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	seed    int64
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "particles",
	Short: "An ambient particle field with links between nearby dots",
	Long: `particles draws the drifting, linked particle field of a portfolio hero
section. Scroll the page to move the field out of view and it stops
animating until it comes back.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for the particle field (0 seeds from the clock)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSource() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("seed %d", s)
	return rand.New(rand.NewSource(s))
}

// setupLog points the standard logger at --log-file, or at fallback when
// no file was given. The returned func closes the file.
func setupLog(fallback io.Writer) (func(), error) {
	log.SetPrefix("particles: ")
	if logFile == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
