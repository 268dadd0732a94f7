/*
Package planner produces command sequences that print a bitmap with fewer
inputs than visiting every pixel.

Sweep is a simple row based planner. The cursor starts in the top left
corner; for each row holding ink it moves to whichever end of the inked span
is nearer, sweeps across the span inking as it goes and then steps down.
Rows after the last inked row are never visited.
*/
package planner

import (
	"errors"

	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/command"
)

var errOffCanvas = errors.New("planner: cursor left the canvas")

// Sweep is the row sweeping planner.
type Sweep struct{}

func span(b *bitmap.Bitmap, y int, invert bool) (int, int, bool) {
	lo, hi := -1, -1
	for x := 0; x < bitmap.Width; x++ {
		if b.At(x, y) != invert {
			if lo < 0 {
				lo = x
			}
			hi = x
		}
	}
	return lo, hi, lo >= 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func move(cmds []command.Command, from, to int) []command.Command {
	for ; from < to; from++ {
		cmds = append(cmds, command.Right)
	}
	for ; from > to; from-- {
		cmds = append(cmds, command.Left)
	}
	return cmds
}

// Plan returns the commands needed to ink b. When invert is set the pixels
// without ink are planned instead.
func (Sweep) Plan(b *bitmap.Bitmap, invert bool) ([]command.Command, error) {
	last := -1
	for y := 0; y < bitmap.Height; y++ {
		if _, _, ok := span(b, y, invert); ok {
			last = y
		}
	}

	var cmds []command.Command
	x := 0
	for y := 0; y <= last; y++ {
		if y > 0 {
			cmds = append(cmds, command.Down)
		}

		lo, hi, ok := span(b, y, invert)
		if !ok {
			continue
		}

		start, end := lo, hi
		if abs(x-hi) < abs(x-lo) {
			start, end = hi, lo
		}
		cmds = move(cmds, x, start)
		x = start

		step := 1
		if end < start {
			step = -1
		}
		for {
			if b.At(x, y) != invert {
				cmds = append(cmds, command.Ink)
			}
			if x == end {
				break
			}
			if step > 0 {
				cmds = append(cmds, command.Right)
			} else {
				cmds = append(cmds, command.Left)
			}
			x += step
		}
	}

	return cmds, nil
}

// Rate compares the length of cmds with the cost of visiting every pixel
// and inking as it goes.
func (Sweep) Rate(cmds []command.Command) command.Difficulty {
	if len(cmds) > command.MaxCount {
		return command.Wasteful
	}

	inks := 0
	for _, c := range cmds {
		if c == command.Ink {
			inks++
		}
	}

	ratio := float64(len(cmds)) / float64(bitmap.Pixels+inks)
	switch {
	case ratio <= 0.25:
		return command.Simple
	case ratio <= 0.6:
		return command.Moderate
	case ratio < 1:
		return command.Complex
	}
	return command.Wasteful
}

// Replay runs cmds from the top left corner and returns the pixels inked.
func Replay(cmds []command.Command) (*bitmap.Bitmap, error) {
	pix := make([]bool, bitmap.Pixels)
	x, y := 0, 0
	for _, c := range cmds {
		switch c {
		case command.Right:
			x++
		case command.Left:
			x--
		case command.Down:
			y++
		case command.Ink:
			pix[y*bitmap.Width+x] = true
		}
		if x < 0 || x >= bitmap.Width || y >= bitmap.Height {
			return nil, errOffCanvas
		}
	}
	return bitmap.New(pix)
}
