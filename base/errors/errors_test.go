// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
}

func TestJoin(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", io.EOF)
	assert.True(t, Is(err, io.EOF))
	joined := Join(err, New("other"))
	assert.True(t, Is(joined, io.EOF))
	assert.Nil(t, Join())
}
