// Command rei is the enumeration-only CLI (spec.md §6): it reads one
// pos/neg example file, runs package engine directly (no divide-and-conquer
// split), and prints a human-readable report ending in the inferred RE.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/bitshape/regexinfer/cost"
	"github.com/bitshape/regexinfer/engine"
	"github.com/bitshape/regexinfer/internal/capability"
	"github.com/bitshape/regexinfer/internal/input"
)

func main() {
	os.Exit(run(os.Args))
}

func usage(prog string) {
	fmt.Fprintf(os.Stderr, "usage: %s <input> <c-alpha> <c-?> <c-*> <c-concat> <c-+> <c-&> <maxCost>\n", prog)
}

func run(argv []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(argv) != 9 {
		usage(argv[0])
		return 2
	}

	pos, neg, err := input.ParseFile(argv[1])
	if err != nil {
		logger.Error("reading input file", "path", argv[1], "error", err)
		return 1
	}

	costs, err := parseCosts(argv[2:8])
	if err != nil {
		logger.Error("parsing cost function", "error", err)
		return 1
	}

	maxCost, err := strconv.Atoi(argv[8])
	if err != nil {
		logger.Error("parsing maxCost", "value", argv[8], "error", err)
		return 1
	}

	cfg := engine.DefaultConfig()
	cfg.Cost = costs
	cfg.MaxCost = maxCost
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	logger.Info("cpu capabilities", "features", capability.Probe())
	logger.Info("starting enumeration", "positives", len(pos), "negatives", len(neg), "maxCost", maxCost)

	start := time.Now()
	result, err := engine.Run(cfg, pos, neg)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("enumeration failed", "error", err)
		return 1
	}

	printReport(pos, neg, costs, maxCost, elapsed, result)
	return 0
}

func parseCosts(args []string) (cost.Function, error) {
	var v [6]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return cost.Function{}, fmt.Errorf("cost argument %q: %w", a, err)
		}
		v[i] = n
	}
	f := cost.FromSlice(v)
	if err := f.Validate(); err != nil {
		return cost.Function{}, err
	}
	return f, nil
}

func printReport(pos, neg []string, costs cost.Function, maxCost int, elapsed time.Duration, result engine.Result) {
	fmt.Println()
	fmt.Print("Positive: ")
	for _, p := range pos {
		fmt.Printf("%q ", p)
	}
	fmt.Println()
	fmt.Print("Negative: ")
	for _, n := range neg {
		fmt.Printf("%q ", n)
	}
	fmt.Println()
	fmt.Printf("Cost Function: a=%d ?=%d *=%d concat=%d +=%d &=%d, maxCost=%d\n",
		costs.Alpha, costs.Question, costs.Star, costs.Concat, costs.Or, costs.And, maxCost)
	fmt.Printf("Operators: %s\n", result.Counts)
	fmt.Printf("IC size: %d, REs considered: %d\n", result.ICSize, result.AllREs)
	fmt.Printf("Running Time: %s\n", elapsed)
	fmt.Printf("Cost: %d\n", result.Cost)
	fmt.Printf("RE: %q\n", result.RE)
}
