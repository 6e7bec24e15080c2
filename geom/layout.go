// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// Attrib is one float vertex attribute within an interleaved vertex.
// Size and Offset are in float components.
type Attrib struct {
	Name   string
	Slot   uint32
	Size   int32
	Offset int32
}

// Layout describes interleaved float vertex data.
type Layout struct {
	// Stride is the number of float components per vertex.
	Stride int32

	Attribs []Attrib
}

// PosColor is the layout of [Floats] output: position at slot 0 and
// color at slot 1, 3 components each.
var PosColor = Layout{
	Stride: 6,
	Attribs: []Attrib{
		{Name: "position", Slot: 0, Size: 3, Offset: 0},
		{Name: "color", Slot: 1, Size: 3, Offset: 3},
	},
}

// Validate checks that every attribute fits within the stride and
// that no two attributes share a slot.
func (ly Layout) Validate() error {
	if ly.Stride <= 0 {
		return fmt.Errorf("geom: layout stride must be positive, not %d", ly.Stride)
	}
	if len(ly.Attribs) == 0 {
		return fmt.Errorf("geom: layout has no attributes")
	}
	slots := map[uint32]string{}
	for _, at := range ly.Attribs {
		if at.Size < 1 || at.Size > 4 {
			return fmt.Errorf("geom: attribute %q size %d not in 1..4", at.Name, at.Size)
		}
		if at.Offset < 0 || at.Offset+at.Size > ly.Stride {
			return fmt.Errorf("geom: attribute %q at offset %d size %d exceeds stride %d", at.Name, at.Offset, at.Size, ly.Stride)
		}
		if other, has := slots[at.Slot]; has {
			return fmt.Errorf("geom: attributes %q and %q share slot %d", other, at.Name, at.Slot)
		}
		slots[at.Slot] = at.Name
	}
	return nil
}
