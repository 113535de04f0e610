package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/savetree/internal/config"
	"github.com/joshuapare/savetree/internal/logger"
	"github.com/joshuapare/savetree/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errUsage = errors.New("missing scan file")

// cliArgs is the parsed command line
type cliArgs struct {
	opts    session.Options
	debug   bool
	help    bool
	version bool
}

// parseArgs reads flags and the scan path. Value flags accept both
// "--flag value" and "--flag=value".
func parseArgs(args []string, cfg config.Config) (cliArgs, error) {
	out := cliArgs{debug: cfg.Debug}
	out.opts.TogglesPath = cfg.TogglesPath

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		var dest *string
		switch name {
		case "--debug", "-d":
			out.debug = true
			continue
		case "--help", "-h":
			out.help = true
			continue
		case "--version", "-v":
			out.version = true
			continue
		case "--strict":
			out.opts.Strict = true
			continue
		case "--backup":
			dest = &out.opts.BackupPath
		case "--duplicates":
			dest = &out.opts.DuplicatesPath
		case "--toggles":
			dest = &out.opts.TogglesPath
		default:
			if strings.HasPrefix(arg, "-") {
				return out, fmt.Errorf("unknown option: %s", arg)
			}
			if out.opts.ScanPath != "" {
				return out, fmt.Errorf("unexpected argument: %s", arg)
			}
			out.opts.ScanPath = arg
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return out, fmt.Errorf("option %s needs a value", name)
			}
			i++
			value = args[i]
		}
		*dest = value
	}

	if out.opts.ScanPath == "" && !out.help && !out.version {
		return out, errUsage
	}
	return out, nil
}

func main() {
	cfg := config.Load()

	args, err := parseArgs(os.Args[1:], *cfg)
	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if args.help {
		printHelp()
		os.Exit(0)
	}
	if args.version {
		fmt.Printf("saveexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: args.debug,
		LogDir:  cfg.LogDir,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	logger.Info("starting saveexplorer", "scan", args.opts.ScanPath, "debug", args.debug)

	s, err := session.Load(args.opts)
	if err != nil {
		logger.Error("failed to load scan", "path", args.opts.ScanPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("saveexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: saveexplorer [options] <scan.json>\n")
	fmt.Fprintf(os.Stderr, "Try 'saveexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("saveexplorer - Interactive TUI for game save scan results")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  saveexplorer [options] <scan.json>")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j       Navigate up/down")
	fmt.Println("    →/l            Expand")
	fmt.Println("    ←/h            Collapse / go to parent")
	fmt.Println("    Enter, Space   Expand/collapse")
	fmt.Println("    x              Toggle ignored")
	fmt.Println("    ?              Show help")
	fmt.Println("    q              Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  --backup <file>       Failed files and registry keys (JSON)")
	fmt.Println("  --duplicates <file>   Duplicated files and registry keys (JSON)")
	fmt.Println("  --toggles <file>      Ignore toggles (YAML, default $SAVETREE_TOGGLES)")
	fmt.Println("  --strict              Reject scans with empty paths")
	fmt.Println("  -d, --debug           Enable debug logging to ~/.savetree/logs/")
	fmt.Println("  -h, --help            Show this help message")
	fmt.Println("  -v, --version         Show version information")
	fmt.Println()
	fmt.Println("For non-interactive output, use 'savetree tree' instead.")
}
