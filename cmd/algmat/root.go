package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/algmat"
	"github.com/consensys/algmat/algebra"
	"github.com/consensys/algmat/algebra/mpoly"
)

var (
	fVars string
	fGens []string
)

var rootCmd = &cobra.Command{
	Use:   "algmat",
	Short: "rank, circuit and base-degree queries on the algebraic matroid of a prime ideal",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fVars, "vars", "", "comma-separated ring variables, e.g. x,y,z")
	rootCmd.PersistentFlags().StringArrayVar(&fGens, "gen", nil, "ideal generator, repeatable, e.g. --gen \"y - x^2\"")
	rootCmd.MarkPersistentFlagRequired("vars")
}

// buildMatroid constructs the matroid from the --vars and --gen flags.
func buildMatroid() (*algmat.Matroid, *mpoly.Ring, error) {
	names := splitList(fVars)
	if len(names) == 0 {
		return nil, nil, errors.New("--vars must name at least one variable")
	}
	ring, err := mpoly.NewRing(names...)
	if err != nil {
		return nil, nil, err
	}
	eng := mpoly.NewEngine(ring)

	gens := make([]algebra.Polynomial, len(fGens))
	for i, src := range fGens {
		p, err := ring.Parse(src)
		if err != nil {
			return nil, nil, err
		}
		gens[i] = p
	}

	m, err := algmat.New(eng, eng.NewIdeal(gens...))
	if err != nil {
		return nil, nil, err
	}
	return m, ring, nil
}

// parseSubset resolves a comma-separated variable list against the ring.
func parseSubset(ring *mpoly.Ring, list string) ([]algebra.Variable, error) {
	names := splitList(list)
	out := make([]algebra.Variable, len(names))
	for i, n := range names {
		v, ok := ring.Var(n)
		if !ok {
			return nil, fmt.Errorf("unknown variable %q", n)
		}
		out[i] = v
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
