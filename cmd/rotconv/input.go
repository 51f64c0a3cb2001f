// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/quat2rot/batch"
)

var (
	errRaggedInput = errors.New("input lists have unequal lengths")
	errNonFinite   = errors.New("input value is not a finite number")
)

// loadInput returns the full shape (batch axes plus entity axes) and the
// flat values for one run.
//
// A file is decoded as a nested YAML/JSON list and keeps its nesting as the
// shape. Arguments and stdin are a flat stream of numbers grouped into
// consecutive entities, giving a rank-1 batch. A count that does not divide
// into whole entities is left for the batch constructors to reject.
func loadInput(o *CommonOptions, args []string, entity batch.Shape) (batch.Shape, []float64, error) {
	if o.InputFile != "" {
		if len(args) > 0 {
			return nil, nil, errors.New("positional values cannot be combined with --input-file")
		}
		data, err := os.ReadFile(o.InputFile)
		if err != nil {
			return nil, nil, err
		}
		shape, values, err := parseNested(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", o.InputFile, err)
		}
		klog.V(4).InfoS("Read input file", "path", o.InputFile, "shape", shape.String())

		return shape, values, nil
	}

	var (
		text   string
		source = "args"
	)
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		source = "stdin"
		data, err := io.ReadAll(o.In)
		if err != nil {
			return nil, nil, err
		}
		text = string(data)
	}
	values, err := parseNumbers(text)
	if err != nil {
		return nil, nil, err
	}
	klog.V(4).InfoS("Read input values", "source", source, "count", len(values))

	lead := len(values) / entity.Size()
	shape := append(batch.ShapeOf(lead), entity...)

	return shape, values, nil
}

// parseNumbers splits s on whitespace, commas and brackets and parses
// every field as a finite float.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '[' || r == ']'
	})
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value %d (%s): %w", i, f, errNonFinite)
		}
		out[i] = v
	}

	return out, nil
}

// parseNested decodes a YAML (or JSON) document of nested number lists.
func parseNested(data []byte) (batch.Shape, []float64, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}

	return flatten(doc)
}

// flatten walks a decoded value, returning its nesting shape and leaves in
// row-major order. Every list at one depth must have the same shape.
func flatten(v any) (batch.Shape, []float64, error) {
	switch t := v.(type) {
	case int:
		return batch.Shape{}, []float64{float64(t)}, nil
	case int64:
		return batch.Shape{}, []float64{float64(t)}, nil
	case uint64:
		return batch.Shape{}, []float64{float64(t)}, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, nil, fmt.Errorf("%v: %w", t, errNonFinite)
		}
		return batch.Shape{}, []float64{t}, nil
	case []any:
		var (
			inner batch.Shape
			out   []float64
		)
		for i, e := range t {
			s, vals, err := flatten(e)
			if err != nil {
				return nil, nil, err
			}
			if i == 0 {
				inner = s
			} else if !inner.Equal(s) {
				return nil, nil, fmt.Errorf("element %d has shape %v, want %v: %w", i, s, inner, errRaggedInput)
			}
			out = append(out, vals...)
		}

		return append(batch.ShapeOf(len(t)), inner...), out, nil
	default:
		return nil, nil, fmt.Errorf("unsupported value %v of type %T", v, v)
	}
}

// narrow converts values to precision T.
func narrow[T batch.Float](vs []float64) []T {
	out := make([]T, len(vs))
	for i, v := range vs {
		out[i] = T(v)
	}

	return out
}
