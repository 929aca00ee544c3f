package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zfake/internal/cli"
	"github.com/zarlcorp/zfake/internal/record"
	"github.com/zarlcorp/zfake/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

const usage = `usage: zfake [command]

commands:
  generate   generate records (see zfake generate -h)
  fields     list field names
  locales    list locales
  profile    print the effective profile
  version    print the version

with no command, zfake starts the interactive generator.
`

func main() {
	app := zapp.New(zapp.WithName("zfake"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		setupLogging(os.Stderr, cli.Verbose(os.Args[2:]))
		err := runCLI(os.Args[1], os.Args[2:])
		_ = app.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "zfake: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}

	if err := runTUI(ctx); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// setupLogging installs the default slog logger. Debug output is opt-in.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func runCLI(cmd string, args []string) error {
	switch cmd {
	case "version":
		fmt.Printf("zfake %s\n", version)
	case "generate":
		return cli.CmdGenerate(args, os.Stdout, os.Stderr)
	case "fields":
		cli.CmdFields(os.Stdout)
	case "locales":
		cli.CmdLocales(os.Stdout)
	case "profile":
		return cli.CmdProfile(args, os.Stdout)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func runTUI(ctx context.Context) error {
	// the terminal belongs to the TUI, so logs go to a file or nowhere
	logOut := io.Discard
	if cli.Verbose(nil) {
		f, err := os.OpenFile("zfake-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	setupLogging(logOut, cli.Verbose(nil))

	p, cfg := cli.TUIConfig()
	gen := record.New(record.WithLogger(slog.Default()))
	m := tui.New(version, gen, cfg, cli.ExportDir(p))

	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
