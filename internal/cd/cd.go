// Package cd provides shorthand aliases for the Gio layout types.
// It is meant to be dot-imported by UI code.
package cd

import "gioui.org/layout"

type (
	C = layout.Context
	D = layout.Dimensions
)
