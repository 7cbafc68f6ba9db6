package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/wahlandcase/attuned.release/internal/changelog"
	"github.com/wahlandcase/attuned.release/internal/config"
	"github.com/wahlandcase/attuned.release/internal/git"
	"github.com/wahlandcase/attuned.release/internal/models"
	"github.com/wahlandcase/attuned.release/internal/release"
	"github.com/wahlandcase/attuned.release/internal/store"
	"github.com/wahlandcase/attuned.release/internal/tui"
	"github.com/wahlandcase/attuned.release/internal/ui"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	dryRun     bool
	push       bool
	plain      bool
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "attrel",
		Short:         "Bump the version, regenerate the changelog, and tag a release",
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "Report the release without making changes")
	rootCmd.PersistentFlags().BoolVarP(&push, "push", "p", false, "Push the release commit and tag to the remote")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable the interactive progress UI")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default attrel.toml at the repo root)")

	rootCmd.AddCommand(
		newBumpCmd(models.BumpPatch, `Update patch version, e.g. "x.x.1" -> "x.x.2"`),
		newBumpCmd(models.BumpMinor, `Update minor version, e.g. "x.1.x" -> "x.2.0"`),
		newBumpCmd(models.BumpMajor, `Update major version, e.g. "1.x.x" -> "2.0.0"`),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func newBumpCmd(kind models.BumpKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:          kind.String(),
		Short:        short,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelease(kind)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Print the current stored version",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, cfg, err := openRepo()
			if err != nil {
				return err
			}
			st := store.New(repo.Path(), cfg.Paths.VersionFile, cfg.Paths.SyncFiles)
			v, err := st.Read()
			if err != nil {
				return err
			}
			fmt.Println(v.String())
			return nil
		},
	}
}

func openRepo() (*git.Repo, *config.Config, error) {
	repo, err := git.Discover()
	if err != nil {
		return nil, nil, fmt.Errorf("not inside a git repository: %w", err)
	}

	var cfg *config.Config
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadFromRepo(repo.Path())
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return repo, cfg, nil
}

func runRelease(kind models.BumpKind) error {
	repo, cfg, err := openRepo()
	if err != nil {
		return err
	}

	st := store.New(repo.Path(), cfg.Paths.VersionFile, cfg.Paths.SyncFiles)
	gen := changelog.New(repo.Path(), cfg.Paths.Changelog)
	opts := release.Options{Kind: kind, DryRun: dryRun, Push: push}
	run := release.New(cfg, st, gen, repo, opts)

	if plain || termenv.EnvNoColor() || !stdoutIsTerminal() {
		return runPlain(run, opts)
	}
	return tui.Run(run, opts)
}

func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// runPlain executes the release with line-by-line output for pipes and CI
func runPlain(run *release.Run, opts release.Options) error {
	fmt.Println(ui.SectionHeader("RELEASE "+strings.ToUpper(opts.Kind.String()), ui.BumpColor(opts.Kind.String())))
	if opts.DryRun {
		fmt.Println(ui.DryRunBanner())
	}

	if err := run.Execute(ui.NewPrinter(os.Stdout)); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.VersionArrow(run.Current.String(), run.Next.String(), opts.Kind.String()))
	if opts.DryRun {
		fmt.Println()
		fmt.Print(run.Preview)
		fmt.Println()
		fmt.Println(ui.WarnStyle.Render("Dry run - nothing was changed"))
		return nil
	}

	fmt.Println(ui.DoneStyle.Render("Released " + run.TagName))
	return nil
}
