// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Codes are the physical key codes of key events, independent of the
// windowing system. Only the keys the render loop and its callers care
// about are named; everything else is CodeUnknown.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeEscape
	CodeReturnEnter
	CodeSpacebar
	CodeTab
	CodeBackspace
	CodeQ
	CodeW
)

var codeNames = [...]string{
	CodeUnknown:     "Unknown",
	CodeEscape:      "Escape",
	CodeReturnEnter: "ReturnEnter",
	CodeSpacebar:    "Spacebar",
	CodeTab:         "Tab",
	CodeBackspace:   "Backspace",
	CodeQ:           "Q",
	CodeW:           "W",
}

func (kc Codes) String() string {
	if kc < 0 || int(kc) >= len(codeNames) {
		return "Codes(" + strconv.Itoa(int(kc)) + ")"
	}
	return codeNames[kc]
}
