/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/notargets/femcore/geometry"
	"github.com/spf13/cobra"
)

// topologyCmd represents the topology command
var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Print the face connectivity of the reference simplex",
	Long: `
Prints the counts and vertex connectivity of every face dimension of the
n-simplex, in the canonical lexicographic face ordering,

femcore topology -d 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dim, _ := cmd.Flags().GetInt("dimension")
		sp, err := geometry.NewSimplex(dim, dim, geometry.ReferenceCoords(dim))
		if err != nil {
			return err
		}
		for e := 0; e <= dim; e++ {
			fmt.Printf("%d-faces: %d\n", e, sp.NumElements(e))
			for t := 0; t <= e; t++ {
				fmt.Printf("  in terms of %d-faces:\n", t)
				for i := 0; i < sp.NumElements(e); i++ {
					row, err := sp.Connectivity(t, e, i)
					if err != nil {
						return err
					}
					fmt.Printf("    %d: %v\n", i, row)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topologyCmd)
	topologyCmd.Flags().IntP("dimension", "d", 2, "topological dimension of the simplex")
}
