//go:build !ebiten

package app

import (
	"errors"

	"cell-society/internal/core"
)

// ErrNoGUI reports a binary built without the ebiten tag.
var ErrNoGUI = errors.New("the viewer requires building with the 'ebiten' tag")

// Run always fails in the headless build.
func Run(core.Manager, core.Config, Options) error {
	return ErrNoGUI
}
