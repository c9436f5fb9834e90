package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolscope/toolscope/pkg/source"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd := flag.NewFlagSet("init", flag.ExitOnError)
			initCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: toolscope init [flags]\n\nCreate a toolscope.yaml config interactively.\n\nFlags:\n")
				initCmd.PrintDefaults()
			}
			cfgPath := initCmd.String("config", "toolscope.yaml", "path to configuration file")
			_ = initCmd.Parse(os.Args[2:])

			if err := runInit(*cfgPath); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		case "list":
			listCmd := flag.NewFlagSet("list", flag.ExitOnError)
			listCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: toolscope list <source>\n\nPrint the catalog as a table without entering the TUI.\n\nFlags:\n")
				listCmd.PrintDefaults()
			}
			_ = listCmd.Parse(os.Args[2:])

			if listCmd.NArg() != 1 {
				listCmd.Usage()
				os.Exit(2)
			}

			if err := withSignalContext(func(ctx context.Context) error {
				return runList(ctx, listCmd.Arg(0))
			}); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		case "snapshot":
			snapCmd := flag.NewFlagSet("snapshot", flag.ExitOnError)
			snapCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: toolscope snapshot [flags] <command> [args...]\n\nCapture an MCP server's tool definitions as a catalog JSON file.\n\nFlags:\n")
				snapCmd.PrintDefaults()
			}
			out := snapCmd.String("out", "-", "output file (\"-\" for stdout)")
			_ = snapCmd.Parse(os.Args[2:])

			if snapCmd.NArg() < 1 {
				snapCmd.Usage()
				os.Exit(2)
			}

			if err := withSignalContext(func(ctx context.Context) error {
				return runSnapshot(ctx, snapCmd.Arg(0), snapCmd.Args()[1:], *out)
			}); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: toolscope [flags] [source]\n       toolscope <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init      Create a toolscope.yaml config interactively\n  list      Print the catalog as a table\n  snapshot  Capture an MCP server's tools as a catalog file\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: toolscope.yaml)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	mcpServer := flag.String("mcp", "", "load the catalog live from an MCP server command line")
	watch := flag.Bool("watch", false, "reload automatically when a file source changes")
	logFile := flag.String("log-file", "", "write debug logs to this file")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, flag.Arg(0), *mcpServer, *watch, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func withSignalContext(fn func(context.Context) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return fn(ctx)
}

func run(configPath, ref, mcpServer string, watch bool, logFile string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadAppConfig(resolveConfigPath(configPath))
	if err != nil {
		return err
	}

	src, err := pickSource(ref, mcpServer, cfg)
	if err != nil {
		return err
	}

	if logFile == "" {
		logFile = cfg.LogFile
	}
	logger := newTUILogger(logFile)

	model := newAppModel(ctx, src, logger, watch || cfg.Watch)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send the program reference so the model can start bridge goroutines.
	go func() {
		p.Send(programReadyMsg{program: p})
	}()

	_, err = p.Run()
	return err
}

// pickSource resolves the catalog source. Priority: --mcp flag, then
// the positional reference, then the config file.
func pickSource(ref, mcpServer string, cfg appConfig) (source.Source, error) {
	if mcpServer != "" {
		parts := strings.Fields(mcpServer)
		return source.NewMCPSource(parts[0], parts[1:]...), nil
	}

	if ref == "" {
		ref = cfg.Source
	}
	if ref == "" {
		return nil, fmt.Errorf("no catalog source: pass a file path or URL, or set one in toolscope.yaml")
	}

	return source.Resolve(ref), nil
}
