package main

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"

	"asciishader"

	"github.com/codegangsta/cli"
	"github.com/disintegration/imaging"
	"golang.org/x/term"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "asciishader"
	app.Usage = "A command-line tool for rendering images as ascii art."
	app.UsageText = "1) asciishader [options] [file|url]\n" +
		/*        */ "   2) asciishader [options] < [file]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "shader,s",
			Usage: "`RAMP` of characters ordered dark to light.",
			Value: asciishader.DefaultRamp,
		},
		cli.StringFlag{
			Name:  "chars,c",
			Usage: "`CHARS` are ranked by measured brightness under --font. Overrides --shader.",
		},
		cli.StringFlag{
			Name:  "font,f",
			Usage: "`FONT` is a truetype font file used to measure --chars.",
		},
		cli.IntFlag{
			Name:  "width,x",
			Usage: "`WIDTH` in character cells. Defaults to the terminal width.",
		},
		cli.IntFlag{
			Name:  "height,y",
			Usage: "`HEIGHT` in character cells. Defaults to the terminal height.",
		},
		cli.Float64Flag{
			Name:  "aspect,a",
			Usage: "`ASPECT` is the height/width ratio of one character cell.",
			Value: asciishader.DefaultAspect,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Reverses the ramp for terminals with dark text on a light background.",
		},
		cli.StringFlag{
			Name:  "out,o",
			Usage: "`FILE` to write the rendering to, in addition to stdout.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
	}
	app.Action = func(c *cli.Context) {
		var reader io.Reader

		// Try to parse the args, if there are any, as a file or url
		if input := c.Args().First(); input != "" {
			// Is it a file?
			if file, err := os.Open(input); err == nil {
				defer file.Close()
				reader = file
			} else {
				// Is it a url?
				resp, err := http.Get(input)
				if err != nil {
					exit(err.Error(), 1)
				}
				defer resp.Body.Close()
				reader = resp.Body
			}
		} else {
			reader = os.Stdin
		}

		// The shader is a prerequisite for everything downstream, so build
		// it before touching the image.
		shader := asciishader.NewShader(c.String("shader"))
		if chars := c.String("chars"); chars != "" {
			fontPath := c.String("font")
			if fontPath == "" {
				exit("--chars requires --font", 1)
			}
			fontData, err := os.ReadFile(fontPath)
			if err != nil {
				exit(err.Error(), 1)
			}
			shader, err = asciishader.MeasureShader(chars, fontData)
			if err != nil {
				exit(err.Error(), 1)
			}
		}

		img, _, err := image.Decode(reader)
		if err != nil {
			exit(err.Error(), 1)
		}
		img = preprocessImage(c, img)

		cols, lines := fit(c)

		opts := []asciishader.Option{
			asciishader.WithShader(shader),
			asciishader.WithFit(cols, lines),
			asciishader.WithAspect(c.Float64("aspect")),
		}
		if c.Bool("invert") {
			opts = append(opts, asciishader.WithInvertedColors())
		}

		// Render to a buffer so a failing --out file never yields a
		// half-written rendering on stdout.
		var buf bytes.Buffer
		if err := asciishader.NewEncoder(&buf, opts...).Encode(img); err != nil {
			exit(err.Error(), 1)
		}

		if err := emit(os.Stdout, c.String("out"), buf.Bytes()); err != nil {
			exit(err.Error(), 1)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// emit delivers the rendering. Stdout always comes first, so a failing --out
// file never suppresses the on-screen output; either failure surfaces.
func emit(stdout io.Writer, outPath string, rendering []byte) error {
	if _, err := stdout.Write(rendering); err != nil {
		return err
	}
	if outPath != "" {
		return os.WriteFile(outPath, rendering, 0644)
	}
	return nil
}

// fit resolves the available display cells. Explicit overrides win; the
// terminal is only queried when at least one axis is unset.
func fit(c *cli.Context) (cols, lines int) {
	cols, lines = c.Int("width"), c.Int("height")
	if cols > 0 && lines > 0 {
		return cols, lines
	}
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		tw, th = 80, 25 // Small, but a pretty standard default
	}
	if cols <= 0 {
		cols = tw
	}
	if lines <= 0 {
		lines = th
	}
	return cols, lines
}

func preprocessImage(c *cli.Context, img image.Image) image.Image {
	if c.IsSet("gamma") {
		img = imaging.AdjustGamma(img, c.Float64("gamma"))
	}
	if c.IsSet("brightness") {
		img = imaging.AdjustBrightness(img, c.Float64("brightness"))
	}
	if c.IsSet("sharpen") {
		img = imaging.Sharpen(img, c.Float64("sharpen"))
	}
	if c.IsSet("contrast") {
		img = imaging.AdjustContrast(img, c.Float64("contrast"))
	}
	return img
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
