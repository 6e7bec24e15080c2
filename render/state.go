// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "strconv"

// State is the state of a [Loop].
type State int32

const (
	// Running is the state from construction until an exit request.
	Running State = iota

	// Exiting is terminal: the loop has been asked to stop and
	// handles no further events.
	Exiting
)

var stateNames = [...]string{
	Running: "Running",
	Exiting: "Exiting",
}

func (st State) String() string {
	if st < 0 || int(st) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(st)) + ")"
	}
	return stateNames[st]
}
