// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command srpdemo renders a single colored triangle (spec.md §8 scenario
// S1) and writes the result to a PNG file, grounded on the teacher's
// cmd/ggdemo/main.go (flag-driven size/output, log.Fatalf on error) and
// original_source/examples/01_colored_triangle/main.c (the equilateral
// triangle, the red/blue/green vertex colors).
package main

import (
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/srp"
	"github.com/gogpu/srp/srptime"
)

type vertex struct {
	position [3]float64
	color    [3]float64
}

func main() {
	var (
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 512, "image height")
		output = flag.String("output", "triangle.png", "output PNG path")
	)
	flag.Parse()

	fb := srp.NewFramebuffer(*width, *height)

	const r = 0.8
	verts := []vertex{
		{position: [3]float64{0, r, 0}, color: [3]float64{1, 0, 0}},
		{position: [3]float64{-math.Cos(deg30) * r, -math.Sin(deg30) * r, 0}, color: [3]float64{0, 0, 1}},
		{position: [3]float64{math.Cos(deg30) * r, -math.Sin(deg30) * r, 0}, color: [3]float64{0, 1, 0}},
	}

	vb := srp.NewVertexBuffer(48)
	data := make([]byte, 0, 48*len(verts))
	for _, v := range verts {
		data = append(data, f64le(v.position[0])...)
		data = append(data, f64le(v.position[1])...)
		data = append(data, f64le(v.position[2])...)
		data = append(data, f64le(v.color[0])...)
		data = append(data, f64le(v.color[1])...)
		data = append(data, f64le(v.color[2])...)
	}
	vb.CopyData(48, data)

	program := srp.NewShaderProgram(nil, vertexShader, fragmentShader,
		srp.VaryingAttr{ElementType: srp.ElementF64, ElementCount: 3})

	ctx := srp.NewContext(srp.WithMessageFunc(func(sev srp.Severity, src srp.Source, msg string, _ any) {
		log.Printf("srp: %s [%s] %s", sev, src, msg)
	}, nil))

	limiter := srptime.NewLimiter(60)
	limiter.Begin()
	ctx.DrawArrays(fb, vb, program, srp.Triangles, 0, 3)
	limiter.End()

	f, err := os.Create(*output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		log.Fatalf("srpdemo: failed to create output file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.ToImage()); err != nil {
		log.Fatalf("srpdemo: failed to encode PNG: %v", err)
	}

	log.Printf("srpdemo: wrote %s (%dx%d)", *output, *width, *height)
}

const deg30 = math.Pi / 6

func vertexShader(in srp.VertexShaderInput, out *srp.VertexShaderOutput) {
	rec := in.Vertex
	out.Position = srp.Vec4{
		X: le64(rec[0:]),
		Y: le64(rec[8:]),
		Z: le64(rec[16:]),
		W: 1,
	}
	copy(out.Varying[0:8], rec[24:32])
	copy(out.Varying[8:16], rec[32:40])
	copy(out.Varying[16:24], rec[40:48])
}

func fragmentShader(in srp.FragmentShaderInput, out *srp.FragmentShaderOutput) {
	out.Color = srp.Vec4{
		X: le64(in.Varying[0:]),
		Y: le64(in.Varying[8:]),
		Z: le64(in.Varying[16:]),
		W: 1,
	}
}

func f64le(v float64) []byte {
	b := make([]byte, 8)
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * i))
	}
	return b
}

func le64(b []byte) float64 {
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(b[i]) << (8 * i)
	}
	return math.Float64frombits(bits)
}
