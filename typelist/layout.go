package typelist

import (
	"fmt"
	"reflect"
)

// Layout is the byte size and alignment needed to hold any one alternative.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the maximum size and maximum alignment across types.
// An empty input yields the layout of an empty struct.
func LayoutOf(types ...reflect.Type) Layout {
	layout := Layout{Align: 1}

	for _, t := range types {
		layout.Size = max(layout.Size, t.Size())
		layout.Align = max(layout.Align, uintptr(t.Align()))
	}

	return layout
}

// String formats the layout as "size=16 align=8".
func (l Layout) String() string {
	return fmt.Sprintf("size=%d align=%d", l.Size, l.Align)
}
