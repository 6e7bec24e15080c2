// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	assert.Equal(t, Teardown, NewTeardown().Type())
	assert.Equal(t, Close, NewClose().Type())
	assert.Equal(t, Redraw, NewRedraw().Type())
	assert.Equal(t, Resize, NewResize(image.Pt(1, 2)).Type())
	assert.Equal(t, KeyDown, NewKey(CodeEscape).Type())
	assert.Equal(t, UnknownType, NewOther("focus").Type())

	assert.Equal(t, "Types(99)", Types(99).String())
	assert.Equal(t, "Codes(-1)", Codes(-1).String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Resize{Size: (640,480)}", NewResize(image.Pt(640, 480)).String())
	assert.Equal(t, "KeyDown{Code: Escape}", NewKey(CodeEscape).String())
	assert.Equal(t, "UnknownType{focus}", NewOther("focus").String())
	assert.Equal(t, "Close", NewClose().String())
}

func TestQueue(t *testing.T) {
	var q Queue
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, 0, q.Len())

	q.Send(NewRedraw())
	q.Send(NewResize(image.Pt(3, 4)))
	q.Send(NewClose())
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, Redraw, q.NextEvent().Type())
	ev := q.NextEvent()
	require.IsType(t, &WindowResize{}, ev)
	assert.Equal(t, image.Pt(3, 4), ev.(*WindowResize).Size)
	assert.Equal(t, Close, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, 0, q.Len())
}

func TestQueueConcurrentSend(t *testing.T) {
	var q Queue
	done := make(chan struct{})
	for range 4 {
		go func() {
			for range 100 {
				q.Send(NewRedraw())
			}
			done <- struct{}{}
		}()
	}
	for range 4 {
		<-done
	}
	assert.Equal(t, 400, q.Len())
}

func TestSequence(t *testing.T) {
	sq := NewSequence(NewRedraw(), NewKey(CodeQ))
	assert.Equal(t, 2, sq.Remaining())

	ev, ok := sq.NextEvent()
	require.True(t, ok)
	assert.Equal(t, Redraw, ev.Type())

	ev, ok = sq.NextEvent()
	require.True(t, ok)
	assert.Equal(t, CodeQ, ev.(*Key).Code)

	ev, ok = sq.NextEvent()
	assert.False(t, ok)
	assert.Nil(t, ev)
	assert.Equal(t, 0, sq.Remaining())

	var _ Source = sq
}
