// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window events consumed by the render loop,
// and the sources that deliver them.
package events

import (
	"fmt"
	"image"
)

// Event is a window or input event.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types
}

// Base is the base type for all events. Events that carry no data
// besides their type, such as [Close] and [Redraw], are just a Base.
type Base struct {
	Typ Types
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) String() string { return ev.Typ.String() }

// WindowResize reports a new drawable size of the window, in pixels.
type WindowResize struct {
	Base
	Size image.Point
}

func (ev *WindowResize) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Typ, ev.Size)
}

// Key reports a key press.
type Key struct {
	Base
	Code Codes
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v}", ev.Typ, ev.Code)
}

// Other is any event the render loop has no rule for, such as focus
// changes or mouse motion. Name describes it for logging.
type Other struct {
	Base
	Name string
}

func (ev *Other) String() string {
	return fmt.Sprintf("%v{%s}", ev.Typ, ev.Name)
}

// NewTeardown returns a new [Teardown] event.
func NewTeardown() Event { return &Base{Typ: Teardown} }

// NewResize returns a new [Resize] event for the given size.
func NewResize(size image.Point) *WindowResize {
	return &WindowResize{Base: Base{Typ: Resize}, Size: size}
}

// NewClose returns a new [Close] event.
func NewClose() Event { return &Base{Typ: Close} }

// NewKey returns a new [KeyDown] event for the given key.
func NewKey(code Codes) *Key {
	return &Key{Base: Base{Typ: KeyDown}, Code: code}
}

// NewRedraw returns a new [Redraw] event.
func NewRedraw() Event { return &Base{Typ: Redraw} }

// NewOther returns a new event of [UnknownType] with the given name.
func NewOther(name string) *Other {
	return &Other{Base: Base{Typ: UnknownType}, Name: name}
}
