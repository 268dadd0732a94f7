package splatpost

import (
	"errors"
	"fmt"
	"sync"

	"github.com/splatpost/splatpost/artifact"
	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/bitpack"
	"github.com/splatpost/splatpost/command"
	"github.com/splatpost/splatpost/fixmask"
	"github.com/splatpost/splatpost/options"
)

func packBitmap(b *bitmap.Bitmap) (<-chan []byte, <-chan error) {
	out := make(chan []byte, 1)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		packed, err := bitpack.Pack(b.Bits())
		if err != nil {
			errc <- err
			return
		}
		out <- packed
	}()
	return out, errc
}

func packFixMask(indices []int) (<-chan [fixmask.Bytes]byte, <-chan error) {
	out := make(chan [fixmask.Bytes]byte, 1)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		out <- fixmask.Encode(indices)
	}()
	return out, errc
}

func (c *Converter) planCommands(b *bitmap.Bitmap, invert bool) (<-chan *command.Section, <-chan error) {
	out := make(chan *command.Section, 1)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)

		cmds, err := c.planner.Plan(b, invert)
		if err != nil {
			errc <- fmt.Errorf("planning: %w", err)
			return
		}

		d := c.planner.Rate(cmds)
		c.logger.Printf("Planned %d commands, rated %s\n", len(cmds), d)
		if !d.Keep() {
			out <- nil
			return
		}

		s, err := command.Encode(cmds)
		switch {
		case errors.Is(err, command.ErrTooLong):
			c.logger.Printf("Plan of %d commands is too long to encode\n", len(cmds))
			out <- nil
		case err != nil:
			errc <- err
		default:
			out <- s
		}
	}()
	return out, errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Build assembles the image data for b. The bitmap, fix mask and command
// sections are built concurrently. The returned option set is the one
// actually encoded; optimal mode is dropped when there is no planner or the
// plan is not worth sending.
//
// The fix mask is always included so the bitmap starts at a fixed offset; it
// is all zero when fix mode is off.
func (c *Converter) Build(b *bitmap.Bitmap, opts options.Set) (*artifact.Payload, options.Set, error) {
	var errcList []<-chan error

	bitmapc, errc := packBitmap(b)
	errcList = append(errcList, errc)

	fixc, errc := packFixMask(opts.Fix)
	errcList = append(errcList, errc)

	var planc <-chan *command.Section
	if opts.Optimal {
		if c.planner == nil {
			c.logger.Println("No planner available, dropping optimal mode")
			opts = opts.WithoutOptimal()
		} else {
			// Plan whichever polarity is actually printed
			printed := b
			if opts.Invert {
				printed = b.Inverse()
			}
			planc, errc = c.planCommands(printed, printed.Count() > bitmap.Pixels/2)
			errcList = append(errcList, errc)
		}
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, opts, err
	}

	mask := <-fixc
	p := &artifact.Payload{
		FixMask: &mask,
		Bitmap:  <-bitmapc,
		Invert:  opts.Invert,
	}

	if planc != nil {
		if p.Commands = <-planc; p.Commands == nil {
			c.logger.Println("Dropping optimal mode")
			opts = opts.WithoutOptimal()
		}
	}

	p.Options = opts.Byte()

	return p, opts, nil
}
