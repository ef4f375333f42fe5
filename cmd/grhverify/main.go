// Command grhverify runs the GRH inequality verification for one quadratic
// Dirichlet L-function from precomputed data files.
//
// Usage:
//
//	grhverify <d> <eta> <K> [--data-dir dir] [--config file.yaml] [--verbose]
//
// The three positional arguments are the fundamental discriminant d, the
// window width eta, and the truncation bound K for the logarithmic
// derivative. The data directory must contain intervals.txt, kronecker.txt
// and von_mangoldt.txt (names overridable via the config file). A missing
// data file or malformed arguments exit with status 1 and a message on
// stderr; otherwise exactly one of two verdict sentences is printed.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/uyen-nguyen-190304/grhverify/discriminant"
	"github.com/uyen-nguyen-190304/grhverify/grh"
	"github.com/uyen-nguyen-190304/grhverify/zerodata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	verdictSatisfied    = "Condition satisfied: RH holds for all the nontrivial zeros of L(s, chi_d) up to height eta."
	verdictNotSatisfied = "Condition not satisfied: cannot conclude RH holds for all the nontrivial zeros of L(s, chi_d) up to height eta."
)

var (
	verbose bool
	dataDir string
	cfgPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "grhverify <d> <eta> <K>",
	Short: "Verify the GRH sufficient-condition inequality for one discriminant",
	Long: `grhverify evaluates a closed-form numerical sufficient condition certifying
that the Generalized Riemann Hypothesis holds for the quadratic Dirichlet
L-function L(s, chi_d) up to height eta, from precomputed zero-interval,
Kronecker-symbol and von Mangoldt data files.`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runVerify,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the data files (default \"data\")")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "optional YAML config file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	d, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("discriminant %q is not an integer: %w", args[0], err)
	}
	eta, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("eta %q is not a number: %w", args[1], err)
	}
	truncK, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("K %q is not an integer: %w", args[2], err)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	dir := cfg.dataDir(dataDir)

	if !discriminant.IsFundamental(d) {
		logger.Warn("discriminant is not fundamental; the associated character data is likely empty",
			zap.Int64("d", d))
	}

	intervals, err := zerodata.LoadIntervals(cfg.intervalsPath(dir))
	if err != nil {
		return err
	}
	chi, err := zerodata.LoadKronecker(cfg.kroneckerPath(dir))
	if err != nil {
		return err
	}
	lambda, err := zerodata.LoadVonMangoldt(cfg.vonMangoldtPath(dir))
	if err != nil {
		return err
	}

	logger.Debug("data loaded",
		zap.Int("intervals", len(intervals)),
		zap.Int("chi_extent", chi.Len()),
		zap.Int("lambda_extent", lambda.Len()))

	res, err := grh.Verify(d, truncK, eta, intervals, chi, lambda)
	if err != nil {
		return err
	}

	logger.Debug("verification finished",
		zap.Bool("verified", res.Verified),
		zap.Int("zeros_used", res.ZerosUsed),
		zap.Float64("lhs", res.LHS),
		zap.Float64("rhs", res.RHS),
		zap.Float64("c_z", grh.CZ(intervals)))

	if res.Verified {
		fmt.Fprintln(cmd.OutOrStdout(), verdictSatisfied)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), verdictNotSatisfied)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
