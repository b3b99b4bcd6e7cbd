package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// ElementParameters obtained from the YAML input file
type ElementParameters struct {
	Title           string  `yaml:"Title"`
	ElementType     string  `yaml:"ElementType"` // "line" or "triangle"
	PolynomialOrder int     `yaml:"PolynomialOrder"`
	Alpha           float64 `yaml:"Alpha"` // Jacobi weight exponents for quadrature tables
	Beta            float64 `yaml:"Beta"`
}

func (ep *ElementParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ep); err != nil {
		return err
	}
	return ep.Validate()
}

func (ep *ElementParameters) Validate() error {
	switch ep.ElementType {
	case "line", "triangle":
	default:
		return fmt.Errorf("unknown element type [%s]", ep.ElementType)
	}
	if ep.PolynomialOrder < 1 {
		return fmt.Errorf("polynomial order [%d] must be at least 1", ep.PolynomialOrder)
	}
	return nil
}

func (ep *ElementParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ep.Title)
	fmt.Printf("[%s]\t\t\t= Element Type\n", ep.ElementType)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ep.PolynomialOrder)
	fmt.Printf("%8.5f\t\t= Alpha\n", ep.Alpha)
	fmt.Printf("%8.5f\t\t= Beta\n", ep.Beta)
}
