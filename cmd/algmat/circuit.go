package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	fBasis   string
	fElement string
)

var circuitCmd = &cobra.Command{
	Use:   "circuit",
	Short: "fundamental circuit of an element with respect to a basis, and its circuit polynomial",
	Run: func(cmd *cobra.Command, args []string) {
		m, ring, err := buildMatroid()
		if err != nil {
			fatal(err)
		}
		basis, err := parseSubset(ring, fBasis)
		if err != nil {
			fatal(err)
		}
		x, ok := ring.Var(fElement)
		if !ok {
			fatal(fmt.Errorf("unknown variable %q", fElement))
		}

		C, err := m.FundamentalCircuit(basis, x)
		if err != nil {
			fatal(err)
		}
		names := make([]string, len(C))
		for i, v := range C {
			names[i] = ring.Name(v)
		}
		fmt.Println("circuit:", strings.Join(names, ","))

		p, err := m.CircuitPolynomial(C)
		if err != nil {
			fatal(err)
		}
		fmt.Println("polynomial:", p)
	},
}

func init() {
	circuitCmd.Flags().StringVar(&fBasis, "basis", "", "comma-separated basis of the matroid")
	circuitCmd.Flags().StringVar(&fElement, "element", "", "variable outside the basis")
	circuitCmd.MarkFlagRequired("basis")
	circuitCmd.MarkFlagRequired("element")
	rootCmd.AddCommand(circuitCmd)
}
