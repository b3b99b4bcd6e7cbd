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

	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/utils"
	"github.com/spf13/cobra"
)

// quadratureCmd represents the quadrature command
var quadratureCmd = &cobra.Command{
	Use:   "quadrature",
	Short: "Print a Gauss-Jacobi quadrature table",
	Long: `
Prints the points and weights of the Gauss-Jacobi rule for the weight
function (1-x)^alpha (1+x)^beta on [-1,1], or of the collapsed coordinate
cubature on the reference triangle,

femcore quadrature -n 4 --alpha 1 --beta 0
femcore quadrature -n 3 -d 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		dim, _ := cmd.Flags().GetInt("dimension")
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		beta, _ := cmd.Flags().GetFloat64("beta")
		var (
			rule *element.GaussRule
			err  error
		)
		switch dim {
		case 1:
			rule, err = element.NewGaussJacobi(alpha, beta, n)
		case 2:
			rule, err = element.NewTriangleGauss(n)
		default:
			return fmt.Errorf("no quadrature family for dimension %d", dim)
		}
		if err != nil {
			return err
		}
		printRule(rule)
		return nil
	},
}

func printRule(rule *element.GaussRule) {
	var (
		dim    = rule.Dimension()
		points = rule.Points()
	)
	for i, w := range rule.Weights() {
		fmt.Printf("%4d: x = %v, w = %12.8f\n", i, points[i*dim:(i+1)*dim], w)
	}
	sum := element.Integrate(rule, utils.ConstArray(rule.NumPoints(), 1))
	fmt.Printf("weight sum (reference measure) = %12.8f\n", sum)
}

func init() {
	rootCmd.AddCommand(quadratureCmd)
	quadratureCmd.Flags().IntP("n", "n", 4, "rule order")
	quadratureCmd.Flags().IntP("dimension", "d", 1, "1 = interval, 2 = triangle")
	quadratureCmd.Flags().Float64("alpha", 0, "first Jacobi weight exponent")
	quadratureCmd.Flags().Float64("beta", 0, "second Jacobi weight exponent")
}
