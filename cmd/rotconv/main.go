// SPDX-License-Identifier: MIT

// Command rotconv converts between quaternions and rotation matrices,
// and samples uniformly random rotations, from the command line.
//
//	rotconv q2r 0.7071 0 0 0.7071
//	rotconv r2q --assert-valid -o yaml -- 1 0 0  0 -1 0  0 0 -1
//	rotconv sample --shape 2,3 --seed 7 --matrix
//
// Logging goes through klog; raise verbosity with -v=2.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := NewRotconvCommand("rotconv", os.Stdin, os.Stdout, os.Stderr)
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		klog.Flush()
		os.Exit(1)
	}
}
