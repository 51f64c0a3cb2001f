// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/quat2rot/batch"
	"github.com/katalvlaran/quat2rot/rotation"
)

var sampleExample = `# six uniformly random unit quaternions in a (2, 3) batch
%[1]s sample --shape 2,3 --seed 7

# one random rotation matrix in single precision
%[1]s sample --matrix --float32`

// SampleOptions holds the state of one sample run.
type SampleOptions struct {
	*CommonOptions

	Shape            []int
	Seed             int64
	Matrix           bool
	AssertNormalized bool
	AssertValid      bool

	shape batch.Shape
}

// Complete builds the batch shape from the --shape vector.
func (o *SampleOptions) Complete() error {
	var err error
	o.shape, err = batch.ShapeFromVector(o.Shape)

	return err
}

// NewCmdSample builds the random rotation subcommand.
func NewCmdSample(parent string, common commonFunc) *cobra.Command {
	o := &SampleOptions{Seed: rotation.DefaultSeed}

	cmd := &cobra.Command{
		Use:     "sample",
		Short:   "Draw uniformly distributed random rotations",
		Example: fmt.Sprintf(sampleExample, parent),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			var err error
			if o.CommonOptions, err = common(c); err != nil {
				return err
			}
			if err = o.Complete(); err != nil {
				return err
			}
			if o.Float32 {
				return runSample[float32](o)
			}

			return runSample[float64](o)
		},
	}

	cmd.Flags().IntSliceVar(&o.Shape, "shape", o.Shape, "batch shape, e.g. 2,3 (empty for a single rotation)")
	cmd.Flags().Int64Var(&o.Seed, "seed", o.Seed, "random seed (0 selects the fixed default stream)")
	cmd.Flags().BoolVar(&o.Matrix, "matrix", o.Matrix, "emit rotation matrices instead of quaternions")
	cmd.Flags().BoolVar(&o.AssertNormalized, "assert-normalized", o.AssertNormalized, "verify every sampled quaternion is unit norm")
	cmd.Flags().BoolVar(&o.AssertValid, "assert-valid", o.AssertValid, "verify every sampled matrix is a proper rotation (with --matrix)")
	return cmd
}

func runSample[T batch.Float](o *SampleOptions) error {
	extra := []rotation.Option{rotation.WithSeed(o.Seed)}
	if o.AssertNormalized {
		extra = append(extra, rotation.WithAssertNormalized())
	}
	if o.AssertValid {
		extra = append(extra, rotation.WithAssertValid())
	}
	opts := o.rotationOptions(extra...)

	klog.V(2).InfoS("Sampling rotations", "shape", o.shape.String(), "seed", o.Seed, "matrix", o.Matrix, "precision", precisionOf[T]())
	if o.Matrix {
		r, err := rotation.RandomUniformRotationMatrix[T](o.shape, opts...)
		if err != nil {
			return err
		}

		return o.print(matricesDocument(r))
	}

	q, err := rotation.RandomUniformQuaternion[T](o.shape, opts...)
	if err != nil {
		return err
	}

	return o.print(quaternionsDocument(q))
}
