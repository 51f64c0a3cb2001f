// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/quat2rot/batch"
	"github.com/katalvlaran/quat2rot/rotation"
)

var (
	q2rExample = `# quarter turn about z
%[1]s q2r 0.70710678 0 0 0.70710678

# normalize sloppy input, then verify the result is unit norm
echo "0.99 0 0 0" | %[1]s q2r --normalize --assert-normalized -o yaml`

	r2qExample = `# 180 degree turn about x, rejecting matrices that are not proper rotations
%[1]s r2q --assert-valid -- 1 0 0  0 -1 0  0 0 -1

# a (2, 3) batch of matrices from a nested YAML list
%[1]s r2q -f matrices.yaml`

	angleExample = `# rotation angle in radians
%[1]s angle 0.70710678 0.70710678 0 0`
)

// ConvertOptions holds the state of one q2r, r2q or angle run.
type ConvertOptions struct {
	*CommonOptions

	Normalize        bool
	AssertNormalized bool
	AssertValid      bool

	fullShape batch.Shape
	values    []float64
}

// Complete reads the input for an entity of the given trailing shape.
func (o *ConvertOptions) Complete(args []string, entity batch.Shape) error {
	var err error
	o.fullShape, o.values, err = loadInput(o.CommonOptions, args, entity)

	return err
}

// NewCmdQ2R builds the quaternion-to-matrix subcommand.
func NewCmdQ2R(parent string, common commonFunc) *cobra.Command {
	o := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:     "q2r [W X Y Z ...]",
		Short:   "Convert quaternions (w, x, y, z) to rotation matrices",
		Example: fmt.Sprintf(q2rExample, parent),
		RunE: func(c *cobra.Command, args []string) error {
			var err error
			if o.CommonOptions, err = common(c); err != nil {
				return err
			}
			if err = o.Complete(args, batch.ShapeOf(batch.QuatLen)); err != nil {
				return err
			}
			if o.Float32 {
				return runQ2R[float32](o)
			}

			return runQ2R[float64](o)
		},
	}

	cmd.Flags().BoolVar(&o.Normalize, "normalize", o.Normalize, "rescale each quaternion to unit norm before converting")
	cmd.Flags().BoolVar(&o.AssertNormalized, "assert-normalized", o.AssertNormalized, "fail unless every quaternion is unit norm (checked after --normalize)")
	return cmd
}

// NewCmdR2Q builds the matrix-to-quaternion subcommand.
func NewCmdR2Q(parent string, common commonFunc) *cobra.Command {
	o := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:     "r2q [R11 R12 ... R33 ...]",
		Short:   "Convert row-major 3x3 rotation matrices to quaternions",
		Example: fmt.Sprintf(r2qExample, parent),
		RunE: func(c *cobra.Command, args []string) error {
			var err error
			if o.CommonOptions, err = common(c); err != nil {
				return err
			}
			if err = o.Complete(args, batch.ShapeOf(batch.MatDim, batch.MatDim)); err != nil {
				return err
			}
			if o.Float32 {
				return runR2Q[float32](o)
			}

			return runR2Q[float64](o)
		},
	}

	cmd.Flags().BoolVar(&o.AssertValid, "assert-valid", o.AssertValid, "fail unless every matrix is orthonormal with determinant 1")
	return cmd
}

// NewCmdAngle builds the rotation-angle subcommand.
func NewCmdAngle(parent string, common commonFunc) *cobra.Command {
	o := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:     "angle [W X Y Z ...]",
		Short:   "Print the rotation angle of each quaternion in radians",
		Example: fmt.Sprintf(angleExample, parent),
		RunE: func(c *cobra.Command, args []string) error {
			var err error
			if o.CommonOptions, err = common(c); err != nil {
				return err
			}
			if err = o.Complete(args, batch.ShapeOf(batch.QuatLen)); err != nil {
				return err
			}
			if o.Float32 {
				return runAngle[float32](o)
			}

			return runAngle[float64](o)
		},
	}

	return cmd
}

func runQ2R[T batch.Float](o *ConvertOptions) error {
	q, err := batch.QuaternionsFromFlat(o.fullShape, narrow[T](o.values))
	if err != nil {
		return err
	}
	var extra []rotation.Option
	if o.Normalize {
		extra = append(extra, rotation.WithNormalize())
	}
	if o.AssertNormalized {
		extra = append(extra, rotation.WithAssertNormalized())
	}

	r, err := rotation.QuaternionToMatrix(q, o.rotationOptions(extra...)...)
	if err != nil {
		return err
	}
	klog.V(2).InfoS("Converted quaternions", "shape", r.Shape().String(), "precision", precisionOf[T]())

	return o.print(matricesDocument(r))
}

func runR2Q[T batch.Float](o *ConvertOptions) error {
	r, err := batch.MatricesFromFlat(o.fullShape, narrow[T](o.values))
	if err != nil {
		return err
	}
	var extra []rotation.Option
	if o.AssertValid {
		extra = append(extra, rotation.WithAssertValid())
	}

	q, err := rotation.MatrixToQuaternion(r, o.rotationOptions(extra...)...)
	if err != nil {
		return err
	}
	klog.V(2).InfoS("Converted matrices", "shape", q.Shape().String(), "precision", precisionOf[T]())

	return o.print(quaternionsDocument(q))
}

func runAngle[T batch.Float](o *ConvertOptions) error {
	q, err := batch.QuaternionsFromFlat(o.fullShape, narrow[T](o.values))
	if err != nil {
		return err
	}
	a, err := rotation.QuaternionRotationAngle(q)
	if err != nil {
		return err
	}
	klog.V(2).InfoS("Computed rotation angles", "shape", a.Shape().String(), "precision", precisionOf[T]())

	return o.print(anglesDocument(a))
}
