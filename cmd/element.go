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
	"os"

	"github.com/notargets/femcore/InputParameters"
	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/utils"
	"github.com/spf13/cobra"
)

// elementCmd represents the element command
var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Summarize a reference element described by a YAML input file",
	Long: `
Builds the reference element named in the input file and prints its
integration rule, basis sizes and the measure of the reference cell,

femcore element -I input.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileName, _ := cmd.Flags().GetString("input")
		data, err := os.ReadFile(fileName)
		if err != nil {
			return err
		}
		ep := &InputParameters.ElementParameters{}
		if err = ep.Parse(data); err != nil {
			return err
		}
		ep.Print()

		var el *element.ReferenceElement
		switch ep.ElementType {
		case "line":
			el, err = element.NewLineElement(ep.PolynomialOrder)
		case "triangle":
			el, err = element.NewTriangleElement(ep.PolynomialOrder)
		}
		if err != nil {
			return err
		}
		var (
			rule  = el.Integrator()
			basis = el.ShapeBasis()
		)
		fmt.Printf("[%d]\t\t\t\t= Integration Points\n", rule.NumPoints())
		fmt.Printf("[%d]\t\t\t\t= Basis Functions\n", basis.NumBases())
		fmt.Printf("[%d]\t\t\t\t= Derivative Order\n", basis.DerivativeOrder())
		measure := el.Integrate(utils.ConstArray(basis.NumBases(), 1))
		fmt.Printf("%8.5f\t\t= Reference Cell Measure\n", measure)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elementCmd)
	elementCmd.Flags().StringP("input", "I", "input.yaml", "YAML element parameter file")
}
