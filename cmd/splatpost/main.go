package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/splatpost/splatpost"
	"github.com/splatpost/splatpost/artifact"
	"github.com/splatpost/splatpost/bilevel"
	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/bitpack"
	"github.com/splatpost/splatpost/command"
	"github.com/splatpost/splatpost/fixmask"
	"github.com/splatpost/splatpost/options"
	"github.com/splatpost/splatpost/planner"
	"github.com/urfave/cli/v2"
)

const (
	defaultOutput = "splat_image.c"
	defaultDB     = "splatpost.db"
	imageDir      = "splat-images"
	previewDir    = "preview-images"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// findImage looks for name as given and then in the image directory.
func findImage(name string) string {
	if _, err := os.Stat(name); err != nil {
		if alt := filepath.Join(imageDir, name); alt != name {
			if _, err := os.Stat(alt); err == nil {
				return alt
			}
		}
	}
	return name
}

func optionSet(c *cli.Context, logger *log.Logger) options.Set {
	opts := options.Set{
		Cautious: c.Bool("cautious"),
		Optimal:  c.Bool("optimal"),
		SlowMode: c.Bool("slowmode"),
		EndSave:  c.Bool("endsave"),
		Vertical: c.Bool("vertical"),
		Invert:   c.Bool("invert"),
	}

	if c.IsSet("fix") {
		indices, err := fixmask.Parse(c.String("fix"), fixmask.Limit(opts.Vertical))
		if err != nil {
			fmt.Printf("Ignoring fix mode: %v\n", err)
			logger.Printf("Fix specification \"%s\" rejected\n", c.String("fix"))
		} else {
			opts.Fix = indices
		}
	}

	return opts
}

// savePreview writes m to a new temporary PNG file and returns its name.
func savePreview(m image.Image) (string, error) {
	f, err := os.CreateTemp("", "bilevel_*.png")
	if err != nil {
		return "", err
	}
	f.Close()
	if err := bilevel.Save(f.Name(), m); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func loadImage(c *cli.Context, name string) (*bitmap.Bitmap, error) {
	m, err := bilevel.Open(name)
	if err != nil {
		return nil, err
	}

	m, rotated, err := bilevel.Normalize(m)
	if err != nil {
		return nil, err
	}
	if rotated {
		fmt.Println("Rotating image counter-clockwise to make it 320px by 120px!")
	}

	mode := bilevel.Dither
	if c.Bool("nodither") {
		mode = bilevel.Threshold
	}
	pm := bilevel.Convert(m, mode)

	base := filepath.Base(name)

	if c.Bool("preview") {
		out, err := savePreview(pm)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Previewing %s as %s\n", base, out)
	}

	if c.Bool("save") {
		if err := os.MkdirAll(previewDir, 0755); err != nil {
			return nil, err
		}
		out := filepath.Join(previewDir, "bilevel_"+strings.TrimSuffix(base, filepath.Ext(base))+".png")
		if err := bilevel.Save(out, pm); err != nil {
			return nil, err
		}
		fmt.Printf("Bilevel preview version of %s saved as %s\n", base, out)
	}

	return bitmap.FromImage(pm)
}

func convert(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowAppHelpAndExit(c, 0)
	}

	logger := newLogger(c)

	name := findImage(c.Args().First())
	b, err := loadImage(c, name)
	if err != nil {
		if errors.Is(err, bilevel.ErrSize) {
			return cli.Exit("ERROR: Image must be 320px by 120px!", 1)
		}
		return cli.Exit(err, 1)
	}

	// Previewing or saving the bilevel image replaces conversion
	if c.Bool("preview") || c.Bool("save") {
		return nil
	}

	opts := optionSet(c, logger)

	var p splatpost.Planner
	if opts.Optimal {
		p = planner.Sweep{}
		if db := c.String("db"); db != "" {
			plans, err := splatpost.NewPlanDB(db)
			if err != nil {
				return cli.Exit(err, 1)
			}
			defer plans.Close()
			p = splatpost.NewCachingPlanner(p, plans, logger)
		}
	}

	payload, opts, err := splatpost.New(p, logger).Build(b, opts)
	if err != nil {
		return cli.Exit(err, 1)
	}

	output := c.String("output")
	if err := artifact.WriteFile(output, payload); err != nil {
		return cli.Exit(err, 1)
	}

	colormap := "original"
	if opts.Invert {
		colormap = "inverted"
	}
	fmt.Printf("%s converted with %s colormap and saved to %s\n", name, colormap, output)

	black := b.Count()
	white := bitmap.Pixels - black
	fmt.Printf("Black Pixel Count: %d\n", black)
	fmt.Printf("White Pixel Count: %d\n", white)
	if black > bitmap.Pixels/2 && !opts.Optimal {
		fmt.Printf("It's %.2f%% more optimal to print in opposite mode. Try re-printing with \"-o\" as an option?\n", (float64(black)/float64(white)-1)*100)
	}
	fmt.Printf("Options: %s\n", opts)
	if payload.Commands != nil {
		fmt.Printf("Commands: %d\n", payload.Commands.Count())
	}

	return nil
}

func inspect(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	declared, data, err := artifact.Decode(f)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if declared != len(data) {
		return cli.Exit(fmt.Sprintf("declared size %d does not match %d bytes of data", declared, len(data)), 1)
	}
	if len(data) == 0 {
		return cli.Exit("no data", 1)
	}

	flags := options.FromByte(data[0])
	p, err := artifact.Split(data, !c.Bool("legacy"), flags[options.Optimal])
	if err != nil {
		return cli.Exit(err, 1)
	}

	var on []string
	for i, set := range flags {
		if set {
			on = append(on, options.Flag(i).String())
		}
	}
	if len(on) == 0 {
		on = append(on, "none")
	}

	ink := 0
	for _, bit := range bitpack.Unpack(p.Bitmap) {
		if bit {
			ink++
		}
	}

	fmt.Printf("Size: %d bytes\n", declared)
	fmt.Printf("Options: %s\n", strings.Join(on, ", "))
	if p.FixMask != nil {
		fmt.Printf("Fix: %v\n", fixmask.Decode(*p.FixMask))
	}
	fmt.Printf("Set bits: %d\n", ink)
	if p.Commands != nil {
		cmds, err := command.Decode(p.Commands)
		if err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Printf("Commands: %d, rated %s\n", len(cmds), planner.Sweep{}.Rate(cmds))
	}

	return nil
}

func newApp(cwd string) *cli.App {
	app := cli.NewApp()

	app.Name = "splatpost"
	app.Usage = "Convert 320x120 images into splat printer image data"
	app.Version = "1.0.0"
	app.ArgsUsage = "IMAGE"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "preview",
			Aliases: []string{"p"},
			Usage:   "write the bilevel image to a temporary file instead of converting",
		},
		&cli.BoolFlag{
			Name:    "save",
			Aliases: []string{"s"},
			Usage:   "save the bilevel image to " + previewDir + " instead of converting",
		},
		&cli.BoolFlag{
			Name:    "invert",
			Aliases: []string{"i", "invertcmap"},
			Usage:   "invert the colormap",
		},
		&cli.BoolFlag{
			Name:    "nodither",
			Aliases: []string{"n"},
			Usage:   "threshold the image instead of dithering",
		},
		&cli.BoolFlag{
			Name:    "cautious",
			Aliases: []string{"c"},
			Usage:   "print in cautious mode",
		},
		&cli.BoolFlag{
			Name:    "optimal",
			Aliases: []string{"o", "opposite"},
			Usage:   "print along a planned path",
		},
		&cli.BoolFlag{
			Name:  "slowmode",
			Usage: "print in slow mode",
		},
		&cli.BoolFlag{
			Name:    "endsave",
			Aliases: []string{"e"},
			Usage:   "save when printing is done",
		},
		&cli.BoolFlag{
			Name:  "vertical",
			Usage: "print in columns rather than lines",
		},
		&cli.StringFlag{
			Name:  "fix",
			Usage: "only print these lines, e.g. 2,7-10",
		},
		&cli.StringFlag{
			Name:    "output",
			EnvVars: []string{"SPLATPOST_OUTPUT"},
			Value:   defaultOutput,
			Usage:   "path to write the image data to",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPLATPOST_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to plan cache, empty to disable",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "increase verbosity",
		},
	}

	app.Action = convert

	app.Commands = []*cli.Command{
		{
			Name:      "inspect",
			Usage:     "Describe previously generated image data",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "legacy",
					Usage: "data has no fix mask section",
				},
			},
			Action: inspect,
		},
	}

	return app
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	if err := newApp(cwd).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
