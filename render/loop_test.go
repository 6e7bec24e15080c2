// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"cogentcore.org/gltriangle/events"
	"cogentcore.org/gltriangle/geom"
	"cogentcore.org/gltriangle/glctx"
	"cogentcore.org/gltriangle/glctx/glmock"
	"cogentcore.org/gltriangle/shader"
	"cogentcore.org/gltriangle/shader/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a [Surface] that records what is done to it,
// in order, into a log shared with other recorders.
type recorder struct {
	log      *[]string
	sizes    []image.Point
	swaps    int
	releases int
}

func (rc *recorder) Resize(size image.Point) {
	*rc.log = append(*rc.log, "resize")
	rc.sizes = append(rc.sizes, size)
}

func (rc *recorder) SwapBuffers() {
	*rc.log = append(*rc.log, "swap")
	rc.swaps++
}

func (rc *recorder) Release() {
	*rc.log = append(*rc.log, "release")
	rc.releases++
}

type fixture struct {
	dr  *glmock.Driver
	dev *glctx.Device
	sf  *recorder
	pr  *shader.Program
	gb  *geom.Binding
	lp  *Loop
	log []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{dr: glmock.New()}
	fx.dev = glctx.NewDevice(fx.dr)
	fx.sf = &recorder{log: &fx.log}
	var err error
	fx.pr, err = shader.Build(fx.dev, shaders.Triangle(shader.GLSL)...)
	require.NoError(t, err)
	fx.gb, err = geom.NewVertices(fx.dev, geom.Triangle)
	require.NoError(t, err)
	fx.lp = NewLoop(fx.dev, fx.sf, fx.pr, fx.gb, Options{
		Size:       image.Pt(512, 512),
		ClearColor: [4]float32{0.4, 0.4, 0.5, 1},
	})
	return fx
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Exiting", Exiting.String())
	assert.Equal(t, "State(5)", State(5).String())
}

func TestNewLoop(t *testing.T) {
	fx := newFixture(t)
	assert.Equal(t, Running, fx.lp.State())
	assert.Equal(t, image.Pt(512, 512), fx.lp.Size())
	assert.Equal(t, [4]int32{0, 0, 512, 512}, fx.dr.ViewportRect)
	assert.Equal(t, [4]float32{0.4, 0.4, 0.5, 1}, fx.dr.ClearRGBA)
	assert.Empty(t, fx.dr.Draws)
}

func TestRedrawResizeEscape(t *testing.T) {
	fx := newFixture(t)
	fx.lp.Run(events.NewSequence(
		events.NewRedraw(),
		events.NewResize(image.Pt(256, 256)),
		events.NewRedraw(),
		events.NewKey(events.CodeEscape),
	))

	assert.Equal(t, Exiting, fx.lp.State())
	assert.Equal(t, 2, fx.lp.Frames())
	assert.Equal(t, 1, fx.lp.Resizes())
	assert.Equal(t, []string{"swap", "resize", "swap"}, fx.log)
	assert.Equal(t, []image.Point{image.Pt(256, 256)}, fx.sf.sizes)
	assert.Equal(t, image.Pt(256, 256), fx.lp.Size())

	require.Len(t, fx.dr.Draws, 2)
	for _, dw := range fx.dr.Draws {
		assert.Equal(t, uint32(glctx.Triangles), dw.Mode)
		assert.Equal(t, int32(0), dw.First)
		assert.Equal(t, int32(3), dw.Count)
		assert.Equal(t, fx.pr.Handle(), dw.Program)
		assert.Equal(t, fx.gb.Array(), dw.VertexArray)
	}
	assert.Equal(t, 2, fx.dr.Clears)
	assert.Equal(t, 1, fx.dr.CallCount("UseProgram"))
	assert.NoError(t, fx.dev.CheckError("run"))
}

func TestCloseWithoutRedraw(t *testing.T) {
	fx := newFixture(t)
	sq := events.NewSequence(events.NewClose(), events.NewRedraw())
	fx.lp.Run(sq)

	assert.Equal(t, Exiting, fx.lp.State())
	assert.Zero(t, fx.lp.Frames())
	assert.Empty(t, fx.dr.Draws)
	assert.Empty(t, fx.log)
	assert.Equal(t, 1, sq.Remaining())
}

func TestHandle(t *testing.T) {
	fx := newFixture(t)
	assert.Equal(t, Running, fx.lp.Handle(events.NewTeardown()))
	assert.Equal(t, Running, fx.lp.Handle(events.NewKey(events.CodeQ)))
	assert.Equal(t, Running, fx.lp.Handle(events.NewOther("focus")))
	assert.Empty(t, fx.log)
	assert.Empty(t, fx.dr.Draws)

	assert.Equal(t, Exiting, fx.lp.Handle(events.NewKey(events.CodeEscape)))
	assert.Equal(t, Exiting, fx.lp.Handle(events.NewRedraw()))
	assert.Equal(t, Exiting, fx.lp.Handle(events.NewResize(image.Pt(1, 1))))
	assert.Equal(t, Exiting, fx.lp.Handle(events.NewTeardown()))
	assert.Empty(t, fx.log)
	assert.Empty(t, fx.dr.Draws)
}

func TestClosedSource(t *testing.T) {
	fx := newFixture(t)
	fx.lp.Run(events.NewSequence(events.NewRedraw()))
	assert.Equal(t, Exiting, fx.lp.State())
	assert.Equal(t, 1, fx.lp.Frames())
}

func TestRelease(t *testing.T) {
	fx := newFixture(t)
	fx.lp.Run(events.NewSequence(events.NewRedraw(), events.NewClose()))
	fx.lp.Release()
	fx.lp.Release()

	assert.Equal(t, []string{"swap", "release"}, fx.log)
	assert.Equal(t, 1, fx.sf.releases)
	assert.Equal(t, 1, fx.dr.CallCount("DeleteProgram"))
	assert.Equal(t, 1, fx.dr.CallCount("DeleteVertexArray"))
	assert.Equal(t, 1, fx.dr.CallCount("DeleteBuffer"))

	names := fx.dr.CallNames()
	var order []string
	for _, n := range names {
		switch n {
		case "DeleteProgram", "DeleteVertexArray", "DeleteBuffer":
			order = append(order, n)
		}
	}
	assert.Equal(t, []string{"DeleteProgram", "DeleteVertexArray", "DeleteBuffer"}, order)

	sh, programs, arrays, buffers := fx.dr.Live()
	assert.Zero(t, sh+programs+arrays+buffers)
	assert.NoError(t, fx.dev.CheckError("release"))
}
