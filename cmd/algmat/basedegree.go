package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fDegreeBasis string

var baseDegreeCmd = &cobra.Command{
	Use:   "basedegree",
	Short: "base degree of a basis (Monte-Carlo: evaluated at a random point)",
	Run: func(cmd *cobra.Command, args []string) {
		m, ring, err := buildMatroid()
		if err != nil {
			fatal(err)
		}
		basis, err := parseSubset(ring, fDegreeBasis)
		if err != nil {
			fatal(err)
		}
		d, err := m.BaseDegree(basis)
		if err != nil {
			fatal(err)
		}
		fmt.Println(d)
	},
}

func init() {
	baseDegreeCmd.Flags().StringVar(&fDegreeBasis, "basis", "", "comma-separated basis of the matroid")
	baseDegreeCmd.MarkFlagRequired("basis")
	rootCmd.AddCommand(baseDegreeCmd)
}
