// Command sandbox demonstrates defining a problem, wrapping it in a
// container and inspecting it, mirroring the classic problem-definition
// tutorial: print the wrapped problem, query its shape, evaluate the
// fitness and gradient at a point while watching the evaluation counter,
// and recover the typed problem to read its best known solution.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/thalesfsp/opt"
)

var (
	flagPoint    []float64
	flagMinimize bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Inspect and minimize the example quadratic problem",
	Long: `Wraps the 4-dimensional quadratic test problem in a problem container,
prints its metadata, evaluates fitness and gradient at a chosen point and
shows the evaluation counters. With --minimize it also runs the
surrogate-guided solver on the problem.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().Float64SliceVar(&flagPoint, "point", []float64{2, 2, 2, 2},
		"decision vector to evaluate")
	rootCmd.Flags().BoolVar(&flagMinimize, "minimize", false,
		"run the solver on the problem")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log every evaluation")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))

	// Constructing a problem.
	p, err := opt.New(opt.Quadratic{}, opt.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to wrap problem: %w", err)
	}

	// The container renders a multi-line summary.
	fmt.Println(p)

	fmt.Printf("Calling the dimension getter: %d\n", p.Dimension())
	fmt.Printf("Calling the fitness dimension getter: %d\n", p.FitnessDimension())

	lower, upper := p.Bounds()
	fmt.Printf("Calling the bounds getter: %v %v\n", lower, upper)

	// A fresh container starts with a zeroed evaluation counter.
	fmt.Printf("fevals: %d\n", p.Evaluations())

	f, err := p.Fitness(flagPoint)
	if err != nil {
		return fmt.Errorf("fitness evaluation failed: %w", err)
	}
	fmt.Printf("calling fitness in x=%v: %v\n", flagPoint, f)
	fmt.Printf("fevals: %d\n", p.Evaluations())

	grad, err := p.Gradient(flagPoint)
	if err != nil {
		return fmt.Errorf("gradient evaluation failed: %w", err)
	}
	fmt.Printf("calling gradient in x=%v: %v\n", flagPoint, grad)

	fmt.Printf("sparsity: %v\n", p.Sparsity())

	// The concrete problem stays reachable behind the container.
	if q, ok := opt.Extract[opt.Quadratic](p); ok {
		fmt.Printf("Accessing best known: %v\n", q.BestKnown())
	}

	if flagMinimize {
		config := opt.DefaultConfig()
		result, err := opt.Minimize(config, p)
		if err != nil {
			return fmt.Errorf("minimization failed: %w", err)
		}

		logger.Info("minimization finished",
			"x", result.X,
			"f", result.F,
			"evaluations", result.Evaluations,
		)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
