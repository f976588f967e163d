package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/esomanifest-go/internal/app"
	"github.com/quantmind-br/esomanifest-go/internal/config"
	"github.com/quantmind-br/esomanifest-go/internal/source"
	"github.com/quantmind-br/esomanifest-go/internal/tui"
	"github.com/quantmind-br/esomanifest-go/pkg/version"
)

// errValidationFailed is returned by validate when any manifest fails
var errValidationFailed = errors.New("validation failed")

var (
	// Dependencies for testing
	osStat    = os.Stat
	runTUI    = tui.Run
	openCache = app.OpenCache
)

// cliOptions holds the persistent flags that are not bound to viper
type cliOptions struct {
	cfgFile string
	verbose bool
	noCache bool
	refresh bool
	noColor bool

	// versionConstraint is set by validate only
	versionConstraint string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "esomanifest",
		Short: "Parse and validate Elder Scrolls Online addon manifests",
		Long: `esomanifest reads addon manifest files (AddonName.txt), reports their
metadata and checks them against the rules the game client applies.

Inputs can be manifest files, addon zip archives or whole AddOns folders.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.esomanifest/config.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	flags.BoolVar(&opts.noCache, "no-cache", false, "Disable the parse cache")
	flags.BoolVar(&opts.refresh, "refresh-cache", false, "Reparse cached manifests")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors in text reports")
	flags.String("encoding", "", "Input encoding: utf-8, auto or a label such as windows-1252")
	flags.IntP("workers", "j", config.DefaultWorkers, "Number of concurrent workers")
	flags.StringP("format", "f", config.DefaultOutputFormat, "Report format: text, json or yaml")

	// Bind flags to viper
	_ = viper.BindPFlag("source.encoding", flags.Lookup("encoding"))
	_ = viper.BindPFlag("concurrency.workers", flags.Lookup("workers"))
	_ = viper.BindPFlag("output.format", flags.Lookup("format"))

	rootCmd.AddCommand(
		newParseCmd(opts),
		newValidateCmd(opts),
		newCacheCmd(opts),
		newConfigCmd(opts),
		newDoctorCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func loadConfig(opts *cliOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.noColor {
		cfg.Output.Color = false
	}
	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func newOrchestrator(cmd *cobra.Command, opts *cliOptions, cfg *config.Config) (*app.Orchestrator, error) {
	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:            cfg,
		Verbose:           opts.verbose,
		NoCache:           opts.noCache,
		Refresh:           opts.refresh,
		Out:               cmd.OutOrStdout(),
		Status:            cmd.ErrOrStderr(),
		VersionConstraint: opts.versionConstraint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return orchestrator, nil
}

func newParseCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the parsed content of one manifest",
		Long: `Parse reads a manifest file or addon archive and prints its fields,
errors and warnings. Parse problems do not change the exit code; use
validate for that.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			orchestrator, err := newOrchestrator(cmd, opts, cfg)
			if err != nil {
				return err
			}
			defer orchestrator.Close()

			result, err := orchestrator.Parse(ctx, args[0])
			if err != nil {
				return err
			}
			return result.Err
		},
	}

	cmd.Flags().Bool("full", config.DefaultFullValidation, "Apply length limits and required directive checks")
	_ = viper.BindPFlag("validation.full", cmd.Flags().Lookup("full"))
	return cmd
}

func newValidateCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file|dir>...",
		Short: "Validate manifests, archives and AddOns folders",
		Long: `Validate runs the full set of checks on every manifest found below the
given paths and exits with status 1 when any of them has errors. With
--strict, warnings such as unmapped directives fail as well. With
--version-constraint, manifests whose Version is not a semantic version
inside the range fail too.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			cfg.Validation.Full = true

			ctx, cancel := signalContext()
			defer cancel()

			orchestrator, err := newOrchestrator(cmd, opts, cfg)
			if err != nil {
				return err
			}
			defer orchestrator.Close()

			summary, err := orchestrator.Validate(ctx, args)
			if err != nil {
				return err
			}
			if !summary.OK(cfg.Validation.Strict) {
				return fmt.Errorf("%w: %s", errValidationFailed, summary)
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", config.DefaultStrict, "Fail on warnings too")
	cmd.Flags().StringVar(&opts.versionConstraint, "version-constraint", "", `Fail manifests whose Version is outside a semver range, e.g. ">= 2.0, < 3"`)
	_ = viper.BindPFlag("validation.strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func newCacheCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the parse cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show cache location and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			c, err := openCache(cfg)
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			defer c.Close()

			stats := c.Stats()
			if cfg.Output.Format == config.FormatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Directory: %s\n", cfg.Cache.Directory)
			fmt.Fprintf(out, "Entries:   %d\n", stats.Entries)
			fmt.Fprintf(out, "LSM size:  %d bytes\n", stats.LSMSize)
			fmt.Fprintf(out, "Log size:  %d bytes\n", stats.VLogSize)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached parse result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			c, err := openCache(cfg)
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			defer c.Close()

			count := c.Size()
			if err := c.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", count)
			return nil
		},
	})

	return cmd
}

func newConfigCmd(opts *cliOptions) *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit the configuration interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			path := opts.cfgFile
			if path == "" {
				path = config.ConfigFilePath()
			}

			return runTUI(tui.Options{
				Config:     cfg,
				Path:       path,
				Accessible: accessible,
				SaveFunc: func(c *config.Config) error {
					return config.Save(c, path)
				},
			})
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, "Use plain prompts for screen readers")
	return cmd
}

func newDoctorCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and cache",
		Long:  "Verifies that the configuration loads and the cache directory is usable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking environment...")
			allPassed := true

			// Check 1: Config file
			fmt.Fprint(out, "  Config file: ")
			cfg, err := loadConfig(opts)
			if err != nil {
				fmt.Fprintf(out, "FAILED (%v)\n", err)
				cfg = config.Default()
				allPassed = false
			} else if path := configFileUsed(opts); path != "" {
				fmt.Fprintf(out, "OK (%s)\n", path)
			} else {
				fmt.Fprintln(out, "OK (defaults)")
			}

			// Check 2: Encoding
			fmt.Fprint(out, "  Encoding: ")
			if _, name, err := source.Decode(nil, cfg.Source.Encoding); err != nil {
				fmt.Fprintf(out, "FAILED (%v)\n", err)
				allPassed = false
			} else {
				fmt.Fprintf(out, "OK (%s)\n", encodingName(cfg.Source.Encoding, name))
			}

			// Check 3: Cache directory
			fmt.Fprint(out, "  Cache: ")
			if !cfg.Cache.Enabled {
				fmt.Fprintln(out, "DISABLED")
			} else if ok := checkCache(out, cfg); !ok {
				allPassed = false
			}

			fmt.Fprintln(out)
			if allPassed {
				fmt.Fprintln(out, "All checks passed!")
			} else {
				fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
			}
			return nil
		},
	}
}

func configFileUsed(opts *cliOptions) string {
	if opts.cfgFile != "" {
		return opts.cfgFile
	}
	if _, err := osStat(config.ConfigFilePath()); err == nil {
		return config.ConfigFilePath()
	}
	if _, err := osStat("config.yaml"); err == nil {
		abs, _ := filepath.Abs("config.yaml")
		return abs
	}
	return ""
}

func encodingName(label, name string) string {
	if label == source.EncodingAuto {
		return "auto"
	}
	return name
}

func checkCache(out io.Writer, cfg *config.Config) bool {
	c, err := openCache(cfg)
	if err != nil {
		fmt.Fprintf(out, "FAILED (%v)\n", err)
		return false
	}
	defer c.Close()
	fmt.Fprintf(out, "OK (%s, %d entries)\n", cfg.Cache.Directory, c.Size())
	return true
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
