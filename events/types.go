// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of window event.
type Types int32

const (
	// zero value is an unknown type, used for events the render loop ignores
	UnknownType Types = iota

	// Teardown is sent once when the window and its context are about to go
	// away, after the loop has stopped.
	Teardown

	// Resize happens when the drawable size of the window changes.
	Resize

	// Close happens when the user requests that the window be closed.
	Close

	// KeyDown happens when a key is pressed.
	KeyDown

	// Redraw happens when the window contents must be painted again.
	Redraw
)

var typeNames = [...]string{
	UnknownType: "UnknownType",
	Teardown:    "Teardown",
	Resize:      "Resize",
	Close:       "Close",
	KeyDown:     "KeyDown",
	Redraw:      "Redraw",
}

func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typeNames) {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typeNames[tp]
}
