package srp

import "testing"

// colorVertexProgram builds a pass-through shader program over a vertex
// record layout of {pos.xyz, color.rgb}, all f64, matching the literal
// scenarios of §8.
func colorVertexProgram() *ShaderProgram {
	vs := func(in VertexShaderInput, out *VertexShaderOutput) {
		rec := in.Vertex
		out.Position = Vec4{
			X: readF64(rec[0:]),
			Y: readF64(rec[8:]),
			Z: readF64(rec[16:]),
			W: 1,
		}
		writeF64(out.Varying[0:], readF64(rec[24:]))
		writeF64(out.Varying[8:], readF64(rec[32:]))
		writeF64(out.Varying[16:], readF64(rec[40:]))
	}
	fs := func(in FragmentShaderInput, out *FragmentShaderOutput) {
		out.Color = Vec4{
			X: readF64(in.Varying[0:]),
			Y: readF64(in.Varying[8:]),
			Z: readF64(in.Varying[16:]),
			W: 1,
		}
	}
	return NewShaderProgram(nil, vs, fs, VaryingAttr{ElementType: ElementF64, ElementCount: 3})
}

func colorVertex(x, y, z, r, g, b float64) []byte {
	rec := make([]byte, 48)
	writeF64(rec[0:], x)
	writeF64(rec[8:], y)
	writeF64(rec[16:], z)
	writeF64(rec[24:], r)
	writeF64(rec[32:], g)
	writeF64(rec[40:], b)
	return rec
}

// TestDraw_S1_ColoredTriangleFill exercises §8 scenario S1.
func TestDraw_S1_ColoredTriangleFill(t *testing.T) {
	fb := NewFramebuffer(512, 512)
	vb := NewVertexBuffer(48)
	var data []byte
	data = append(data, colorVertex(0, 0.8, 0, 1, 0, 0)...)
	data = append(data, colorVertex(-0.693, -0.4, 0, 0, 0, 1)...)
	data = append(data, colorVertex(0.693, -0.4, 0, 0, 1, 0)...)
	vb.CopyData(48, data)

	ctx := NewContext()
	program := colorVertexProgram()
	ctx.DrawArrays(fb, vb, program, Triangles, 0, 3)

	if fb.ColorAt(255, 255) == 0 {
		t.Error("center pixel should be covered by the triangle")
	}
	if fb.DepthAt(255, 255) == -1.0 {
		t.Error("center pixel should have a written depth")
	}
	if fb.ColorAt(5, 5) != 0 || fb.DepthAt(5, 5) != -1.0 {
		t.Error("corner pixel outside the triangle should remain untouched")
	}
}

// TestDraw_S2_DepthTestRejectsBackQuad exercises §8 scenario S2, with
// the depth values chosen consistent with this pipeline's chosen
// strict-greater depth test (§4.2, §9 open question (c)): the later,
// winning quad must carry the larger depth.
func TestDraw_S2_DepthTestRejectsBackQuad(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	ctx := NewContext()
	program := colorVertexProgram()

	far := NewVertexBuffer(48)
	var farData []byte
	farData = append(farData, colorVertex(-1, -1, 0.0, 1, 0, 0)...)
	farData = append(farData, colorVertex(1, -1, 0.0, 1, 0, 0)...)
	farData = append(farData, colorVertex(-1, 1, 0.0, 1, 0, 0)...)
	farData = append(farData, colorVertex(1, -1, 0.0, 1, 0, 0)...)
	farData = append(farData, colorVertex(1, 1, 0.0, 1, 0, 0)...)
	farData = append(farData, colorVertex(-1, 1, 0.0, 1, 0, 0)...)
	far.CopyData(48, farData)
	ctx.DrawArrays(fb, far, program, Triangles, 0, 6)

	near := NewVertexBuffer(48)
	var nearData []byte
	nearData = append(nearData, colorVertex(-1, -1, 0.5, 0, 1, 0)...)
	nearData = append(nearData, colorVertex(1, -1, 0.5, 0, 1, 0)...)
	nearData = append(nearData, colorVertex(-1, 1, 0.5, 0, 1, 0)...)
	nearData = append(nearData, colorVertex(1, -1, 0.5, 0, 1, 0)...)
	nearData = append(nearData, colorVertex(1, 1, 0.5, 0, 1, 0)...)
	nearData = append(nearData, colorVertex(-1, 1, 0.5, 0, 1, 0)...)
	near.CopyData(48, nearData)
	ctx.DrawArrays(fb, near, program, Triangles, 0, 6)

	got := UnpackRGBA8888(fb.ColorAt(32, 32))
	if got.G < 0.99 || got.R > 0.01 {
		t.Errorf("expected the second, greater-depth quad to win at (32,32), got %v", got)
	}
	if fb.DepthAt(32, 32) != 0.5 {
		t.Errorf("expected depth 0.5 at (32,32), got %v", fb.DepthAt(32, 32))
	}
}

// TestDraw_S3_BackFaceCulling exercises §8 scenario S3.
func TestDraw_S3_BackFaceCulling(t *testing.T) {
	fb := NewFramebuffer(512, 512)
	vb := NewVertexBuffer(48)
	var data []byte
	data = append(data, colorVertex(0, 0.8, 0, 1, 0, 0)...)
	data = append(data, colorVertex(0.693, -0.4, 0, 0, 1, 0)...)
	data = append(data, colorVertex(-0.693, -0.4, 0, 0, 0, 1)...)
	vb.CopyData(48, data)

	ctx := NewContext(WithFrontFace(FrontFaceCCW), WithCullFace(CullBack))
	program := colorVertexProgram()
	ctx.DrawArrays(fb, vb, program, Triangles, 0, 3)

	if fb.ColorAt(255, 255) != 0 {
		t.Error("reversed-winding triangle should be fully culled under CullBack")
	}
}

// TestDraw_S4_OOBGuard exercises §8 scenario S4.
func TestDraw_S4_OOBGuard(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	vb := NewVertexBuffer(48)
	var data []byte
	data = append(data, colorVertex(0, 0.8, 0, 1, 0, 0)...)
	data = append(data, colorVertex(-0.5, -0.5, 0, 0, 1, 0)...)
	data = append(data, colorVertex(0.5, -0.5, 0, 0, 0, 1)...)
	vb.CopyData(48, data)

	var sawError bool
	ctx := NewContext(WithMessageFunc(func(sev Severity, _ Source, _ string, _ any) {
		if sev == SeverityError {
			sawError = true
		}
	}, nil))
	program := colorVertexProgram()
	ctx.DrawArrays(fb, vb, program, Triangles, 0, 6)

	if !sawError {
		t.Error("expected an OOB error diagnostic")
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if fb.ColorAt(x, y) != 0 {
				t.Fatalf("framebuffer should be unchanged after an OOB draw; pixel (%d,%d) is set", x, y)
			}
		}
	}
}

// TestDraw_S6_PointSize exercises §8 scenario S6.
func TestDraw_S6_PointSize(t *testing.T) {
	fb := NewFramebuffer(512, 512)
	vb := NewVertexBuffer(48)
	vb.CopyData(48, colorVertex(0, 0, 0, 1, 1, 1))

	ctx := NewContext(WithPointSize(6.0))
	program := colorVertexProgram()
	ctx.DrawArrays(fb, vb, program, Points, 0, 1)

	written := 0
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			if fb.ColorAt(x, y) != 0 {
				written++
				if x < 252 || x > 257 || y < 252 || y > 257 {
					t.Errorf("pixel (%d,%d) written outside the expected 6x6 square", x, y)
				}
			}
		}
	}
	if written != 36 {
		t.Errorf("written pixel count = %d, want 36", written)
	}
}
