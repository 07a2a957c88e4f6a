// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrhex reads a QR code, shows its data as hex, applies the
// frame transform and writes the result as a new QR code.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/unixdj/qrhex"
	"github.com/unixdj/qrhex/internal/logger"
	"github.com/unixdj/qrhex/scan"
	"github.com/unixdj/qrhex/symbol"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale    int             // scale
	border   int             // quiet zone
	palette  *[2]color.Color // palette
	fn       string          // output filename
	lev      symbol.Level    // QR correction level
	format   int             // index into formats
	bg, fg   rgba            // colour
	colSet   bool            // colour set
	hexIn    bool            // hex text input
	large    bool            // large size override
	original bool            // output original data
	copy     bool            // copy text output to clipboard
	tui      bool            // interactive editor
	debug    bool            // debug log
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	fmt.Fprint(w, "QR code hex viewer and editor\nUsage: ", prog, " ",
		cl.UsageLine(), ` [file]
Reads a QR code image (PNG, JPEG or GIF), or hex text with -x, from
file or standard input.  The data is transformed unless -n is given:
its length is written at offsets 126-127 and every 128-byte frame
after the first is replaced by a copy of the first.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrhex version 0.1.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

var rgb = map[string]rgba{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0xff, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"navy":   {0x00, 0x00, 0x80, 0xff},
	"gray":   {0xbe, 0xbe, 0xbe, 0xff},
	"grey":   {0xbe, 0xbe, 0xbe, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	return c.parse(s)
}

func (c *rgba) parse(s string) error {
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or colour name; `+
		`only for types png[i], PNG[i]`, "RGB[A]|name")
	getopt.Flag(&g.hexIn, 'x', "input is hex text, not an image")
	getopt.Flag(&g.large, 'L', "large size: two byte length field "+
		"for 128 to 255 bytes of data from QR versions below 10")
	getopt.Flag(&g.original, 'n', "output the original data, "+
		"not transformed")
	getopt.Flag(&g.copy, 'c', "copy text output to the clipboard")
	getopt.Flag(&g.tui, 'i', "edit interactively; "+
		"-o names the file to generate")
	getopt.Flag(&g.debug, 'D', "write debug log to standard error; "+
		`with -i, to "qrhex-debug.log"`)
	getopt.Flag(&g.border, 'm', `quiet zone pixels [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', symbol.DefaultScale,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; "hex", "edit" and "raw" write hex text with spaces, `+
		`without spaces and without any separators; `+
		`types with "i" appended have colours inverted; `+
		`"png" uses a fast bespoke QR PNG encoder, `+
		`"PNG" the standard Go encoder; `+
		`if no -o is given and standard output is a TTY, `+
		`default is hex, otherwise png`, "type")

	getopt.Parse()
	if len(getopt.Args()) > 1 {
		fmt.Fprintln(os.Stderr, "too many arguments")
		usage()
	}
	g.scale = int(*scale)
	g.lev = symbol.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if !getopt.IsSet('m') {
		g.border = symbol.DefaultBorder
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "hex"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i
			break
		}
	}
	if g.copy && !isText(g.format) {
		fmt.Fprintln(os.Stderr, "-c requires a text type: hex, edit or raw")
		usage()
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	lopts := logger.Options{Enabled: g.debug}
	if g.tui {
		lopts.File = "qrhex-debug.log"
	}
	if err := run(getopt.Args(), lopts); err != nil {
		log.Fatalln(err)
	}
}

// run does the work selected by the flags on the file named in args.
// The log is closed before run returns.
func run(args []string, lopts logger.Options) (err error) {
	closeLog, err := logger.Init(lopts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
	}()
	defer func() {
		if err != nil {
			logger.Debug("exit", "err", err)
		}
	}()

	s := qrhex.NewSession()
	if len(args) != 0 || !g.tui ||
		!isatty.IsTerminal(uintptr(syscall.Stdin)) {
		name := ""
		if len(args) != 0 {
			name = args[0]
		}
		if err := load(s, name, g.hexIn); err != nil {
			return err
		}
	}
	s.SetOverride(g.large)
	s.SetShowDerived(!g.original)

	if g.tui {
		out := g.fn
		if out == "" {
			out = "qrhex.png"
		}
		return runTUI(s, out, g.lev)
	}
	return write(s)
}

// load reads the named file, or standard input if name is "" or "-",
// into s.  The file holds an image unless hexIn is set.
func load(s *qrhex.Session, name string, hexIn bool) error {
	var r io.Reader = os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if hexIn {
		b, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if err := s.Edit(string(b)); err != nil {
			return err
		}
		logger.Debug("parsed hex", "bytes", len(s.Original))
		return nil
	}
	res, err := scan.DecodeReader(r)
	if err != nil {
		if errors.Is(err, scan.ErrNotFound) {
			return fmt.Errorf("%s: %w", displayName(name), err)
		}
		return err
	}
	s.Load(res.Bytes, res.Version)
	logger.Debug("decoded", "bytes", len(res.Bytes), "version", res.Version)
	return nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "standard input"
	}
	return name
}

// write writes the output selected by the flags.
func write(s *qrhex.Session) error {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			return err
		}
	}
	o := output{
		s:       s,
		level:   g.lev,
		scale:   g.scale,
		border:  g.border,
		palette: g.palette,
		warn:    warn,
	}
	if g.copy {
		o.copy = clipboard.WriteAll
	}
	err := o.write(g.format, w)
	if open {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func warn(msg string) {
	fmt.Fprintln(os.Stderr, "warning:", msg)
	logger.Warn(msg)
}
