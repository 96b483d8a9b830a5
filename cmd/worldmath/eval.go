package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-worldmath/pkg/double3"
)

// binaryOps produce a vector from two vectors.
var binaryOps = map[string]func(a, b double3.Vector) double3.Vector{
	"add":      double3.Add,
	"subtract": double3.Subtract,
	"multiply": double3.Multiply,
	"divide":   double3.Divide,
	"cross":    double3.Cross,
	"min":      double3.Min,
	"max":      double3.Max,
	"reflect":  double3.Reflect,
}

// scalarOps produce a number from two vectors.
var scalarOps = map[string]func(a, b double3.Vector) float64{
	"dot":              double3.Dot,
	"distance":         double3.Distance,
	"distance-squared": double3.DistanceSquared,
	"angle":            double3.Angle,
}

// unaryOps produce a vector from one vector.
var unaryOps = map[string]func(v double3.Vector) double3.Vector{
	"normalize": double3.Normalize,
	"negate":    double3.Vector.GetNegative,
	"abs":       double3.Abs,
	"round":     double3.Round,
	"floor":     double3.Floor,
	"ceil":      double3.Ceil,
	"frac":      double3.Frac,
}

func operationNames() string {
	names := []string{"lerp", "near-equal"}
	names = appendKeys(names, binaryOps)
	names = appendKeys(names, scalarOps)
	names = appendKeys(names, unaryOps)
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func appendKeys[V any](names []string, m map[string]V) []string {
	for k := range m {
		names = append(names, k)
	}
	return names
}

func newEvalCmd(a *app) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "eval <operation> <vector> [vector]",
		Short: "Evaluate a vector operation",
		Long: `Evaluate a vector operation. Operations: ` + operationNames() + `.

Flags go before the operation name; everything after it is read as an
operand, so negative vectors need no quoting:

  worldmath eval --amount 0.25 lerp -1,2,3 4,8,12`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			operands := make([]double3.Vector, 0, 2)
			for _, s := range args[1:] {
				v, err := parseVector(s)
				if err != nil {
					return err
				}
				operands = append(operands, v)
			}

			result, err := evaluate(op, operands, amount, a.cfg.Numeric.Epsilon)
			if err != nil {
				return err
			}
			a.logger.Debug(a.ctx, "evaluated", "operation", op, "operands", len(operands))
			_, err = fmt.Fprintln(a.stdout, result)
			return err
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0.5, "interpolation amount for lerp")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func evaluate(op string, operands []double3.Vector, amount, epsilon float64) (string, error) {
	if fn, ok := unaryOps[op]; ok {
		if len(operands) != 1 {
			return "", fmt.Errorf("%s takes one vector, got %d", op, len(operands))
		}
		return fn(operands[0]).String(), nil
	}

	_, binary := binaryOps[op]
	_, scalar := scalarOps[op]
	if !binary && !scalar && op != "lerp" && op != "near-equal" {
		return "", fmt.Errorf("unknown operation %q", op)
	}
	if len(operands) != 2 {
		return "", fmt.Errorf("%s takes two vectors, got %d", op, len(operands))
	}
	a, b := operands[0], operands[1]

	switch op {
	case "lerp":
		return double3.Lerp(a, b, amount).String(), nil
	case "near-equal":
		return fmt.Sprint(double3.NearEqualEpsilon(a, b, epsilon)), nil
	}
	if fn, ok := binaryOps[op]; ok {
		return fn(a, b).String(), nil
	}
	return formatScalar(scalarOps[op](a, b)), nil
}
