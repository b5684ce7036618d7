// Command reidc is the divide-and-conquer CLI (spec.md §6): it accepts a
// single input file or a directory of ".txt" example files, solves each
// with package dc's deterministic mid-split variant (or, with -random, the
// randomised-sampling variant), and prints a human-readable report per
// file ending in the inferred RE. A file that fails to parse is skipped
// with a diagnostic rather than aborting the whole batch, matching the
// reference implementation's runOnDirectory (main.cpp).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitshape/regexinfer/cost"
	"github.com/bitshape/regexinfer/dc"
	"github.com/bitshape/regexinfer/internal/capability"
	"github.com/bitshape/regexinfer/internal/input"
	"github.com/bitshape/regexinfer/reconstruct"
)

func main() {
	os.Exit(run(os.Args))
}

func usage(prog string) {
	fmt.Fprintf(os.Stderr, "usage: %s [-random] <input-or-dir> <window> <c-alpha> <c-?> <c-*> <c-concat> <c-+> <maxCost>\n", prog)
}

func run(argv []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	args, randomized := extractFlag(argv[1:], "-random")
	if len(args) != 7 {
		usage(argv[0])
		return 2
	}

	target := args[0]
	window, err := strconv.Atoi(args[1])
	if err != nil {
		logger.Error("parsing window", "value", args[1], "error", err)
		return 1
	}

	costs, err := parseDCCosts(args[2:6])
	if err != nil {
		logger.Error("parsing cost function", "error", err)
		return 1
	}

	maxCost, err := strconv.Atoi(args[6])
	if err != nil {
		logger.Error("parsing maxCost", "value", args[6], "error", err)
		return 1
	}

	cfg := dc.DefaultConfig()
	cfg.Window = window
	cfg.Cost = costs
	cfg.MaxCost = maxCost
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	logger.Info("cpu capabilities", "features", capability.Probe())

	files, err := resolveFiles(target)
	if err != nil {
		logger.Error("resolving input", "path", target, "error", err)
		return 1
	}

	exit := 0
	for _, f := range files {
		if err := processFile(logger, cfg, randomized, f); err != nil {
			logger.Error("processing file", "file", f, "error", err)
			exit = 1
			continue
		}
	}
	return exit
}

// extractFlag removes every occurrence of flag from args, reporting
// whether it was present.
func extractFlag(args []string, flag string) (rest []string, found bool) {
	for _, a := range args {
		if a == flag {
			found = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, found
}

// parseDCCosts reads the DC CLI's five positional costs (alpha, ?, *,
// concat, +) and infers And equal to Or, per spec.md §6's note that the
// DC variant has no "&" argument of its own.
func parseDCCosts(args []string) (cost.Function, error) {
	var v [5]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return cost.Function{}, fmt.Errorf("cost argument %q: %w", a, err)
		}
		v[i] = n
	}
	f := cost.FromSlice([6]int{v[0], v[1], v[2], v[3], v[4], v[4]})
	if err := f.Validate(); err != nil {
		return cost.Function{}, err
	}
	return f, nil
}

func resolveFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}
	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		files = append(files, filepath.Join(target, e.Name()))
	}
	return files, nil
}

func processFile(logger *slog.Logger, cfg dc.Config, randomized bool, path string) error {
	pos, neg, err := input.ParseFile(path)
	if err != nil {
		return err
	}

	start := time.Now()
	var result dc.Result
	if randomized {
		result, err = dc.SolveRandomized(cfg, pos, neg)
	} else {
		result, err = dc.Solve(cfg, pos, neg)
	}
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	printReport(path, pos, neg, elapsed, result)
	return nil
}

func printReport(path string, pos, neg []string, elapsed time.Duration, result dc.Result) {
	fmt.Println()
	fmt.Printf("File: %s\n", path)
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
	fmt.Printf("Call count: %d, Max depth: %d\n", result.Profile.CallCount, result.Profile.MaxDepth)
	fmt.Printf("Running Time: %s\n", elapsed)
	if counts, err := reconstruct.CountOperators(result.RE); err == nil {
		fmt.Printf("Operators: %s\n", counts)
	}
	fmt.Printf("RE: %q\n", result.RE)
}
