package rbvec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rbvec/rbtree"
	"golang.org/x/term"
)

// Palette selects the colors used for console output of a vector's tree.
type Palette struct {
	Level *color.Color // level prefix
	Inner *color.Color // internal nodes and their minima
	Leaf  *color.Color // leaf values
}

// PrintOptions configures Fprint.
type PrintOptions struct {
	LineWidth int      // lines are wrapped to this many characters; 0 means no wrapping
	Colors    *Palette // nil selects the default palette
}

// DefaultPalette returns the palette used when PrintOptions.Colors is nil.
func DefaultPalette() *Palette {
	return &Palette{
		Level: color.New(color.Faint),
		Inner: color.New(color.FgBlue),
		Leaf:  color.New(color.FgGreen),
	}
}

// OptionsFromTerminal is a simple helper for creating print options.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the LineWidth parameter accordingly.
func OptionsFromTerminal() *PrintOptions {
	opts := &PrintOptions{LineWidth: 80}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if w > 20 {
				opts.LineWidth = w - 2
			} else {
				opts.LineWidth = 20
			}
		}
	}
	T().Debugf("setting console line width to %d", opts.LineWidth)
	return opts
}

// Print outputs the tree of a vector to stdout, one line per tree level.
func Print[N Number](v Vector[N]) error {
	return Fprint(os.Stdout, v, OptionsFromTerminal())
}

// Fprint outputs the tree of a vector level by level, root first. Internal
// nodes are shown with their cached minimum as ‘(min)’, leaves with their
// values as ‘[a b]’.
//
// If opts is nil, output is not wrapped and the default palette is used.
func Fprint[N Number](w io.Writer, v Vector[N], opts *PrintOptions) error {
	if opts == nil {
		opts = &PrintOptions{}
	}
	palette := opts.Colors
	if palette == nil {
		palette = DefaultPalette()
	}
	tree := treeFromVector(v)
	levels := make([][]rbtree.NodeInfo[N], tree.Depth()+1)
	_ = tree.Walk(func(info rbtree.NodeInfo[N]) error {
		levels[info.Level] = append(levels[info.Level], info)
		return nil
	})
	for level := tree.Depth(); level >= 1; level-- {
		prefix := fmt.Sprintf("L%-2d│", level)
		lw := &lineWrapper{w: w, width: opts.LineWidth, indent: len([]rune(prefix))}
		lw.write(prefix, palette.Level)
		for _, info := range levels[level] {
			if info.Leaf {
				lw.write(" "+fmt.Sprint(info.Values), palette.Leaf)
			} else if info.HasMin {
				lw.write(fmt.Sprintf(" (%v)", info.Min), palette.Inner)
			} else {
				lw.write(" (∞)", palette.Inner)
			}
		}
		lw.newline()
		if lw.err != nil {
			return lw.err
		}
	}
	return nil
}

// lineWrapper writes colored fragments, measuring line length on their
// uncolored text.
type lineWrapper struct {
	w      io.Writer
	width  int
	indent int
	col    int
	err    error
}

func (lw *lineWrapper) write(text string, c *color.Color) {
	if lw.err != nil {
		return
	}
	n := len([]rune(text))
	if lw.width > 0 && lw.col > lw.indent && lw.col+n > lw.width {
		lw.newline()
		_, lw.err = io.WriteString(lw.w, strings.Repeat(" ", lw.indent))
		lw.col = lw.indent
	}
	if lw.err == nil {
		_, lw.err = c.Fprint(lw.w, text)
		lw.col += n
	}
}

func (lw *lineWrapper) newline() {
	if lw.err == nil {
		_, lw.err = io.WriteString(lw.w, "\n")
		lw.col = 0
	}
}
