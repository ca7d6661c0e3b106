// Command spandump prints the styled runs of a text.
//
// Usage:
//
//	spandump [-spans n,n,...] [-boxes] [-q] [-d] [file]
//
// The text is read from file, or standard input. Spans are given as rune
// lengths; without -spans one span covers the whole text. Spans that do
// not add up to the text length are clamped the same way a layout pass
// would clamp them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rjkroege/textspan/rich"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spandump: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fset := flag.NewFlagSet("spandump", flag.ContinueOnError)
	fset.SetOutput(stderr)
	spanlist := fset.String("spans", "", "comma separated span lengths in runes")
	boxes := fset.Bool("boxes", false, "print layout boxes instead of runs")
	quiet := fset.Bool("q", false, "do not report span/text length mismatches")
	debug := fset.Bool("d", false, "set for verbose debugging")
	if err := fset.Parse(args); err != nil {
		return err
	}
	logger := log.New(io.Discard, "spandump: ", 0)
	if *debug {
		logger.SetOutput(stderr)
	}

	in := stdin
	if fset.NArg() > 0 {
		f, err := os.Open(fset.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading text: %w", err)
	}
	text := string(b)

	lengths, err := parseLengths(*spanlist, text)
	if err != nil {
		return err
	}
	spans := make([]rich.TextSpan[rich.Style], 0, len(lengths))
	for i, n := range lengths {
		spans = append(spans, rich.NewTextSpan(n, styleFor(i)))
	}
	fs := rich.NewFormatSpans(text, spans)
	logger.Printf("%d spans over %d runes", fs.Len(), fs.TextLen())

	if err := fs.Validate(); err != nil && !*quiet {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	if *boxes {
		for _, bx := range rich.Layout(fs, nil) {
			switch {
			case bx.IsNewline():
				fmt.Fprintf(stdout, "%d\tnewline\n", bx.Start)
			case bx.IsTab():
				fmt.Fprintf(stdout, "%d\ttab\n", bx.Start)
			default:
				fmt.Fprintf(stdout, "%d\t%q\n", bx.Start, bx.Text)
			}
		}
		return nil
	}
	for r := range fs.Runs() {
		fmt.Fprintf(stdout, "%d\t%d\t%q\t%s\n", r.Start, r.End, r.Text, styleName(*r.Format))
	}
	return nil
}

func parseLengths(list, text string) ([]int, error) {
	if list == "" {
		return []int{rich.Plain(text).Len()}, nil
	}
	var lengths []int
	for _, f := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad span length %q: %w", f, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("bad span length %d: negative", n)
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}

// styles cycles through the common styles so adjacent spans differ.
// They are all distinct, so styleName recovers the name of each.
var styles = []struct {
	name  string
	style rich.Style
}{
	{"plain", rich.DefaultStyle()},
	{"bold", rich.StyleBold},
	{"italic", rich.StyleItalic},
	{"code", rich.StyleCode},
	{"link", rich.StyleLink},
	{"h1", rich.StyleH1},
	{"h2", rich.StyleH2},
	{"h3", rich.StyleH3},
}

func styleFor(i int) rich.Style {
	return styles[i%len(styles)].style
}

func styleName(s rich.Style) string {
	for _, st := range styles {
		if st.style.Equal(s) {
			return st.name
		}
	}
	return "?"
}
