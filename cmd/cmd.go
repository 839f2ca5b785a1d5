package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/thiagokokada/gitnav/internal/buildinfo"
	"github.com/thiagokokada/gitnav/internal/git"
	"github.com/thiagokokada/gitnav/internal/tui"
)

func Run() error {
	return run(os.Args[1:], os.Stdout)
}

func run(args []string, stdout io.Writer) error {
	cfg, exit, err := parseConfig(args, stdout)
	if err != nil || exit {
		return err
	}
	return tui.Run(cfg)
}

// parseConfig turns command-line arguments into a RunConfig. exit is true
// when the invocation was fully handled (--help, --version).
func parseConfig(args []string, stdout io.Writer) (cfg tui.RunConfig, exit bool, err error) {
	fs := flag.NewFlagSet("gitnav", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, "gitnav - browse a git repository from the terminal")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Usage:")
		fmt.Fprintln(stdout, "  gitnav [options] [path]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
	}
	limit := fs.Int("limit", git.DefaultCommitCount, "number of commits to list")
	searchLimit := fs.Int("search-limit", git.DefaultSearchLimit, "maximum number of search results")
	backend := fs.String("backend", string(git.BackendCLI), "repository backend: cli or native")
	timeout := fs.Duration("timeout", git.DefaultTimeout, "timeout for each repository query")
	mode := fs.String("mode", tui.ThemeAuto.String(), "color mode: auto, light, or dark")
	noWatch := fs.Bool("nowatch", false, "disable automatic reload when repository changes")
	noSyntax := fs.Bool("nosyntax", false, "disable syntax highlighting in the file viewer")
	verbose := fs.BoolP("verbose", "v", false, "enable verbose logging to a temporary file")
	logFile := fs.String("log-file", "", "write logs to this file")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, nil
		}
		return cfg, false, err
	}
	if *showVersion {
		fmt.Fprintln(stdout, buildinfo.Describe("gitnav"))
		if out, err := git.GitVersion(); err == nil {
			fmt.Fprintf(stdout, "%s (requires >= %s)\n", out, git.MinGitVersion())
		} else {
			fmt.Fprintf(stdout, "git not available (requires >= %s)\n", git.MinGitVersion())
		}
		return cfg, true, nil
	}
	kind, err := git.BackendKindFromString(*backend)
	if err != nil {
		return cfg, false, err
	}
	repoPath := "."
	if remaining := fs.Args(); len(remaining) > 0 {
		repoPath = remaining[len(remaining)-1]
	}
	return tui.RunConfig{
		RepoPath:        repoPath,
		Backend:         kind,
		Limit:           *limit,
		SearchLimit:     *searchLimit,
		Timeout:         *timeout,
		ThemePreference: tui.ThemePreferenceFromString(*mode),
		AutoReload:      !*noWatch,
		SyntaxHighlight: !*noSyntax,
		Verbose:         *verbose,
		LogFile:         *logFile,
	}, false, nil
}
