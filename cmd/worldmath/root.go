package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-worldmath/pkg/config"
	"github.com/opd-ai/go-worldmath/pkg/double3"
	"github.com/opd-ai/go-worldmath/pkg/logging"
)

const appName = "worldmath"

// app carries the state shared by every subcommand once the root command
// has loaded the configuration.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *logging.Logger
	ctx     context.Context

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   appName,
		Short: "Double precision vector math for world space coordinates",
		Long: `worldmath evaluates and transforms 3D vectors with float64 components.

Vectors are written as "x,y,z" or in the "X:x Y:y Z:z" form printed by the
tool. Configuration is read from --config (YAML or JSON) and WORLDMATH_*
environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.NewLoggerWithWriter(a.stderr, logging.ParseLevel(cfg.Log.Level))
			a.ctx = logging.WithCorrelationID(cmd.Context(), "")
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML or JSON)")

	root.AddCommand(
		newEvalCmd(a),
		newInspectCmd(a),
		newTransformCmd(a),
		newConfigCmd(a),
	)
	return root
}

// parseVector accepts "x,y,z" or the String form "X:x Y:y Z:z".
func parseVector(s string) (double3.Vector, error) {
	if !strings.Contains(s, ",") {
		return double3.Parse(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return double3.Vector{}, fmt.Errorf("parse %q: expected 3 components, got %d: %w", s, len(parts), double3.ErrInvalidFormat)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return double3.Vector{}, fmt.Errorf("parse %q: %w: %w", s, double3.ErrInvalidFormat, err)
		}
		xyz[i] = f
	}
	return double3.FromArray(xyz), nil
}

func formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
