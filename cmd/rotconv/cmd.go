// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/quat2rot/rotation"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var rotconvLong = `Convert between unit quaternions (w, x, y, z) and 3x3 rotation matrices.

Numbers are read from the arguments, from --input-file (a YAML or JSON
nested list whose shape becomes the batch shape), or from stdin. Separators
may be spaces, commas or brackets. Matrices are row-major.`

// GlobalFlags are the persistent flags shared by every subcommand.
type GlobalFlags struct {
	Tolerance float64
	Workers   int
	Output    string
	Float32   bool
	InputFile string
}

// AddFlags registers the persistent flags on fs.
func (f *GlobalFlags) AddFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&f.Tolerance, "tolerance", f.Tolerance, "absolute tolerance for validation gates (default: 1e-9 for float64, 1e-5 for float32)")
	fs.IntVar(&f.Workers, "workers", f.Workers, "number of goroutines used per batch")
	fs.StringVarP(&f.Output, "output", "o", f.Output, "output format. One of: json|yaml.")
	fs.BoolVar(&f.Float32, "float32", f.Float32, "compute in single precision")
	fs.StringVarP(&f.InputFile, "input-file", "f", f.InputFile, "read input from a YAML or JSON file instead of arguments or stdin")
}

// CommonOptions is the resolved configuration handed to a subcommand run.
type CommonOptions struct {
	Tolerance    float64
	ToleranceSet bool
	Workers      int
	Output       string
	Float32      bool
	InputFile    string

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// ToOptions resolves flags against the parsed command.
func (f *GlobalFlags) ToOptions(c *cobra.Command, in io.Reader, out, errout io.Writer) *CommonOptions {
	return &CommonOptions{
		Tolerance:    f.Tolerance,
		ToleranceSet: c.Flags().Changed("tolerance"),
		Workers:      f.Workers,
		Output:       f.Output,
		Float32:      f.Float32,
		InputFile:    f.InputFile,

		In:     in,
		Out:    out,
		ErrOut: errout,
	}
}

// Validate rejects flag values the rotation package would panic on.
func (o *CommonOptions) Validate() error {
	if o.ToleranceSet && (math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0) {
		return fmt.Errorf("--tolerance must be a finite non-negative number, got %v", o.Tolerance)
	}
	if o.Workers < 0 {
		return fmt.Errorf("--workers must be non-negative, got %d", o.Workers)
	}
	if o.Output != outputJSON && o.Output != outputYAML {
		return fmt.Errorf("invalid output format provided: %s", o.Output)
	}

	return nil
}

// rotationOptions translates the common flags into library options.
func (o *CommonOptions) rotationOptions(extra ...rotation.Option) []rotation.Option {
	opts := []rotation.Option{rotation.WithWorkers(o.Workers)}
	if o.ToleranceSet {
		opts = append(opts, rotation.WithTolerance(o.Tolerance))
	}

	return append(opts, extra...)
}

// NewRotconvCommand builds the root command with all subcommands.
func NewRotconvCommand(name string, in io.Reader, out, errout io.Writer) *cobra.Command {
	flags := &GlobalFlags{
		Workers: rotation.DefaultWorkers,
		Output:  outputJSON,
	}

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Convert between quaternions and rotation matrices",
		Long:          rotconvLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}
	flags.AddFlags(cmd.PersistentFlags())

	common := func(c *cobra.Command) (*CommonOptions, error) {
		o := flags.ToOptions(c, in, out, errout)
		if err := o.Validate(); err != nil {
			return nil, err
		}

		return o, nil
	}

	cmd.AddCommand(
		NewCmdQ2R(name, common),
		NewCmdR2Q(name, common),
		NewCmdAngle(name, common),
		NewCmdSample(name, common),
	)

	return cmd
}

// commonFunc resolves the shared options for a subcommand.
type commonFunc func(c *cobra.Command) (*CommonOptions, error)
