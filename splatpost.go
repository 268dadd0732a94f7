/*
Package splatpost compiles 320 by 120 bilevel images into the image data
array read by the splat printing firmware.
*/
package splatpost

import (
	"log"

	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/command"
)

// Planner produces a command sequence for printing a bitmap and rates how
// worthwhile a sequence is.
type Planner interface {
	Plan(b *bitmap.Bitmap, invert bool) ([]command.Command, error)
	Rate(cmds []command.Command) command.Difficulty
}

// Converter builds image data from bitmaps.
type Converter struct {
	planner Planner
	logger  *log.Logger
}

// New returns a Converter. planner may be nil, in which case optimal mode is
// always dropped.
func New(planner Planner, logger *log.Logger) *Converter {
	return &Converter{
		planner: planner,
		logger:  logger,
	}
}
