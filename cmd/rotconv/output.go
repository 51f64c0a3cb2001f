// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"strconv"
	"unsafe"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/quat2rot/batch"
)

// document is the printed result of every subcommand. Exactly one of the
// payload fields is set; batch order is row-major over Shape.
type document struct {
	Shape       []int           `json:"shape"`
	Precision   string          `json:"precision"`
	Quaternions [][4]float64    `json:"quaternions,omitempty"`
	Matrices    [][3][3]float64 `json:"matrices,omitempty"`
	Angles      []float64       `json:"angles,omitempty"`
}

func quaternionsDocument[T batch.Float](q *batch.Quaternions[T]) document {
	doc := document{Shape: q.Shape(), Precision: precisionOf[T](), Quaternions: make([][4]float64, q.Len())}
	for i, e := range q.Elements() {
		for k := range e {
			doc.Quaternions[i][k] = widen(e[k])
		}
	}

	return doc
}

func matricesDocument[T batch.Float](r *batch.Matrices[T]) document {
	doc := document{Shape: r.Shape(), Precision: precisionOf[T](), Matrices: make([][3][3]float64, r.Len())}
	for i, e := range r.Elements() {
		for row := range e {
			for col := range e[row] {
				doc.Matrices[i][row][col] = widen(e[row][col])
			}
		}
	}

	return doc
}

func anglesDocument[T batch.Float](a *batch.Scalars[T]) document {
	doc := document{Shape: a.Shape(), Precision: precisionOf[T](), Angles: make([]float64, a.Len())}
	for i, v := range a.Elements() {
		doc.Angles[i] = widen(v)
	}

	return doc
}

// print renders doc in the selected output format.
func (o *CommonOptions) print(doc document) error {
	var (
		data []byte
		err  error
	)
	switch o.Output {
	case outputYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = o.Out.Write(data)

	return err
}

// precisionOf names the element type for the output document.
func precisionOf[T batch.Float]() string {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return "float32"
	}

	return "float64"
}

// widen converts v to float64 through its shortest decimal form, so a
// float32 0.1 prints as 0.1 rather than 0.10000000149011612.
func widen[T batch.Float](v T) float64 {
	bits := 64
	if unsafe.Sizeof(v) == 4 {
		bits = 32
	}
	out, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, bits), 64)

	return out
}
