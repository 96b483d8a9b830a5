package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-worldmath/pkg/codec"
	"github.com/opd-ai/go-worldmath/pkg/double3"
	"github.com/opd-ai/go-worldmath/pkg/logging"
	"github.com/opd-ai/go-worldmath/pkg/mathf"
	"github.com/opd-ai/go-worldmath/pkg/validation"
)

const degToRad = math.Pi / 180

type transformOptions struct {
	input     string
	inFormat  string
	outFormat string
	translate string
	scale     string
	rotate    string
	mode      string
	workers   int
}

func newTransformCmd(a *app) *cobra.Command {
	opts := &transformOptions{}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform a list of vectors by scale, rotation and translation",
		Long: `Transform reads a vector list, applies scale, then rotation, then
translation, and writes the results. Scale and rotation go through a
float32 matrix; translation is added in float64 so large offsets keep
their fraction.

Modes:
  point       full transform, W assumed 1 (default)
  normal      rotation and scale only
  coordinate  full transform followed by division by W`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransform(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "-", "input file, - for stdin")
	flags.StringVar(&opts.inFormat, "in-format", string(codec.FormatText), "input format (json, yaml, cbor, text)")
	flags.StringVarP(&opts.outFormat, "format", "f", "", "output format, defaults to output.format from the config")
	flags.StringVar(&opts.translate, "translate", "0,0,0", "translation x,y,z")
	flags.StringVar(&opts.scale, "scale", "1,1,1", "scale x,y,z")
	flags.StringVar(&opts.rotate, "rotate", "0,0,0", "yaw,pitch,roll in degrees")
	flags.StringVar(&opts.mode, "mode", "point", "point, normal or coordinate")
	flags.IntVar(&opts.workers, "workers", -1, "parallel workers, defaults to batch.workers from the config")
	return cmd
}

func (a *app) runTransform(opts *transformOptions) error {
	inFormat, err := codec.ParseFormat(opts.inFormat)
	if err != nil {
		return err
	}
	outName := opts.outFormat
	if outName == "" {
		outName = a.cfg.Output.Format
	}
	outFormat, err := codec.ParseFormat(outName)
	if err != nil {
		return err
	}

	m, translation, err := buildMatrix(opts)
	if err != nil {
		return err
	}
	if err := validation.ValidateMatrix(m); err != nil {
		return fmt.Errorf("transform matrix: %w", err)
	}
	if err := validation.ValidateVector(translation); err != nil {
		return fmt.Errorf("--translate: %w", err)
	}

	vectors, err := a.readVectors(opts.input, inFormat)
	if err != nil {
		return err
	}
	if err := validation.ValidateVectors(vectors); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	workers := opts.workers
	if workers < 0 {
		workers = a.cfg.Batch.Workers
	}

	results := make([]double3.Vector, len(vectors))
	switch opts.mode {
	case "point":
		if err := double3.TransformBatchParallel(a.ctx, vectors, m, results, workers); err != nil {
			return logging.WrapError(err, "transform %d vectors", len(vectors))
		}
		translate(results, translation)
	case "normal":
		for i := range vectors {
			double3.TransformNormalTo(vectors[i], m, &results[i])
		}
	case "coordinate":
		for i := range vectors {
			double3.TransformCoordinateTo(vectors[i], m, &results[i])
		}
		translate(results, translation)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}

	a.logger.Info(a.ctx, "transformed vectors",
		"count", len(vectors),
		"mode", opts.mode,
		"workers", workers,
		logging.VectorAttr("translation", translation),
	)
	return codec.Encode(a.stdout, outFormat, results)
}

func (a *app) readVectors(path string, format codec.Format) ([]double3.Vector, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return codec.Decode(r, format)
}

// buildMatrix composes scale then rotation into a matrix and returns the
// translation separately, to be added after the matrix is applied.
func buildMatrix(opts *transformOptions) (mathf.Matrix, double3.Vector, error) {
	t, err := parseVector(opts.translate)
	if err != nil {
		return mathf.Matrix{}, double3.Vector{}, fmt.Errorf("--translate: %w", err)
	}
	s, err := parseVector(opts.scale)
	if err != nil {
		return mathf.Matrix{}, double3.Vector{}, fmt.Errorf("--scale: %w", err)
	}
	r, err := parseVector(opts.rotate)
	if err != nil {
		return mathf.Matrix{}, double3.Vector{}, fmt.Errorf("--rotate: %w", err)
	}

	r = r.MultiplyScalar(degToRad)
	rotation := mathf.RotationYawPitchRoll(float32(r.X), float32(r.Y), float32(r.Z))

	sf := s.Float3()
	m := mathf.Scaling(sf.X, sf.Y, sf.Z).Multiply(mathf.RotationQuaternion(rotation))
	return m, t, nil
}

func translate(vectors []double3.Vector, t double3.Vector) {
	for i := range vectors {
		vectors[i].AddAssign(t)
	}
}
