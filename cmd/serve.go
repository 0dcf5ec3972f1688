package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tfpf/solve-sudoku/internal/board"
	"github.com/tfpf/solve-sudoku/internal/solver"
	"github.com/tfpf/solve-sudoku/internal/tui"
)

var (
	serveHost    string
	servePort    string
	serveHostKey string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve the pass-by-pass viewer over SSH",
		Long: `Start an SSH server that delivers the interactive viewer for the given
puzzle to every connecting terminal. Each session solves an independent
copy of the puzzle with its own seed.

Example:
  solve-sudoku serve puzzle.txt
  ssh -p 23234 localhost`,
		Args: cobra.ExactArgs(1),
		RunE: runServe,
	}

	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Address to listen on")
	serveCmd.Flags().StringVar(&servePort, "port", "23234", "Port to listen on")
	serveCmd.Flags().StringVar(&serveHostKey, "host-key", ".ssh/solve_sudoku_ed25519", "Path to the SSH host key")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	puzzle, err := readPuzzle(args)
	if err != nil {
		return fmt.Errorf("could not read the puzzle: %w", err)
	}
	if !puzzle.IsValid() {
		return solver.ErrInvalidPuzzle
	}

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(serveHost, servePort)),
		wish.WithHostKeyPath(serveHostKey),
		wish.WithMiddleware(
			bm.Middleware(teaHandler(puzzle)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", serveHost, "port", servePort)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("could not start server", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("could not stop server: %w", err)
	}
	return nil
}

// teaHandler builds the per-session viewer. Every session gets its own
// clone of the puzzle and a time-based seed.
func teaHandler(puzzle *board.Board) bm.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sess.Pty()

		// Remote terminals report no color profile; force one.
		lipgloss.SetColorProfile(termenv.ANSI256)

		m := tui.New(puzzle, time.Now().UnixNano(), pty.Window.Width, pty.Window.Height)
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
