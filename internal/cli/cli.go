// Package cli implements the bake command line: Gram matrices, difference
// tensors and normalising constants computed from point set files.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/KelvyHsu/bake/internal/config"
	"github.com/KelvyHsu/bake/internal/pointset"
	"github.com/KelvyHsu/bake/kern"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

var version = "dev"

var (
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrNegativeDims       = errors.New("dimensionality must not be negative")
	ErrDensityNeedsPoints = errors.New("--density needs a second point set")
)

// app carries what every subcommand needs once the root command has
// resolved config and flags.
type app struct {
	configPath string
	debug      bool
	format     string
	precision  int
	noCheck    bool

	cfg    *config.Config
	logger *zap.Logger
}

func NewCLI() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "bake",
		Short:         "Kernel Gram matrices between point sets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file path")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.StringVar(&a.format, "format", "", "output format (table or json)")
	flags.IntVar(&a.precision, "precision", 0, "digits after the decimal point in table output")
	flags.BoolVar(&a.noCheck, "no-check", false, "skip validation of point sets and length-scales")

	for _, cmd := range []*cobra.Command{
		a.newGramCmd(),
		a.newDistCmd(),
		a.newNormCmd(),
		a.newSweepCmd(),
		a.newKernelsCmd(),
	} {
		rootCmd.AddCommand(cmd)
	}
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if cmd.Flags().Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if cfg.Output.Format != config.FormatTable && cfg.Output.Format != config.FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Output.Format)
	}
	a.cfg = cfg

	logger, err := NewLogger(cfg.Debug || a.debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("config resolved",
		zap.String("config_path", a.configPath),
		zap.String("kernel", cfg.Kernel),
		zap.Float64s("theta", cfg.Theta),
		zap.String("format", cfg.Output.Format),
	)
	return nil
}

// kernelFlags registers the flags shared by commands that evaluate a kernel.
type kernelFlags struct {
	kernel string
	theta  string
}

func (f *kernelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kernel, "kernel", "k", "", "kernel family (see 'bake kernels')")
	cmd.Flags().StringVarP(&f.theta, "theta", "t", "", "comma separated length-scales, one or one per dimension")
}

// resolve picks the kernel and theta from flags, falling back to config.
func (a *app) resolve(f *kernelFlags) (kern.Kernel, []float64, error) {
	name := a.cfg.Kernel
	if f.kernel != "" {
		name = f.kernel
	}
	k, err := kern.Lookup(name)
	if err != nil {
		return kern.Kernel{}, nil, err
	}
	theta := a.cfg.Theta
	if f.theta != "" {
		if theta, err = pointset.ParseFloats(f.theta); err != nil {
			return kern.Kernel{}, nil, fmt.Errorf("theta: %w", err)
		}
	}
	return k, theta, nil
}

func (a *app) load(path string) (*mat.Dense, error) {
	m, err := pointset.Load(path)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	a.logger.Debug("point set loaded",
		zap.String("path", path),
		zap.Int("points", r),
		zap.Int("dims", c),
	)
	return m, nil
}

func (a *app) check(xp mat.Matrix, q kern.Operand, theta []float64) error {
	if a.noCheck {
		return nil
	}
	return kern.Check(xp, q, theta)
}

// Execute runs the bake command line and exits non-zero on failure.
func Execute() {
	if err := NewCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
