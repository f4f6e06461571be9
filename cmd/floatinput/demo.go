package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/floatinput/internal/tui/form"
)

const maxFormWidth = 60

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive input showcase",
		Long: `Run the interactive showcase of floating-label inputs. When standard
output is not a terminal, a single rendering of the form is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	overrides, err := loadOverrides(flags)
	if err != nil {
		return err
	}

	log, closer, err := openLogger(flags)
	if err != nil {
		return err
	}
	defer closer.Close()

	out := cmd.OutOrStdout()
	fd, tty := terminalFD(out)

	opts := form.Options{
		Theme:     overrides.Theme,
		Animation: overrides.Animation,
		Logger:    log,
	}
	if tty {
		if width, _, err := term.GetSize(fd); err == nil {
			opts.Width = min(width-2, maxFormWidth)
		}
	}
	m := form.New(opts)

	if !tty {
		log.Info("output is not a terminal, printing snapshot")
		_, err := fmt.Fprintln(out, m.Snapshot())
		return err
	}

	log.Info("launching demo")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		log.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}
	log.Info("demo closed")

	return nil
}

// terminalFD reports the descriptor of w when it is a terminal.
func terminalFD(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
