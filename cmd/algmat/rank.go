package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fSubset string

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "rank of a subset of the ground set (the whole ground set by default)",
	Run: func(cmd *cobra.Command, args []string) {
		m, ring, err := buildMatroid()
		if err != nil {
			fatal(err)
		}

		var r int
		if fSubset == "" {
			r, err = m.TotalRank()
		} else {
			subset, serr := parseSubset(ring, fSubset)
			if serr != nil {
				fatal(serr)
			}
			r, err = m.Rank(subset)
		}
		if err != nil {
			fatal(err)
		}
		fmt.Println(r)
	},
}

func init() {
	rankCmd.Flags().StringVar(&fSubset, "subset", "", "comma-separated subset of the variables")
	rootCmd.AddCommand(rankCmd)
}
