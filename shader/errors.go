// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import "fmt"

// CompileError is returned when a shader stage fails to compile.
// Message is the driver's diagnostic text, verbatim; it may be empty
// if the driver reported no log.
type CompileError struct {
	Stage   Stage
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s shader failed to compile: %s", e.Stage, e.Message)
}

// LinkError is returned when a program fails to link.
// Message is the driver's diagnostic text, verbatim.
type LinkError struct {
	Message string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader: program failed to link: %s", e.Message)
}
