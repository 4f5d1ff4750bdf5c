package dump

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/paraset/jtree"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// ConsoleOptions controls console output of Text.
type ConsoleOptions struct {
	Color bool // colorize keys and sizes
	Width int  // maximum line width in runes; 0 means unlimited
}

// ConsoleOptionsFromTerminal inspects the file descriptor fd. If it is a
// terminal, colors are switched on and labels are fitted to the terminal's
// width. Otherwise output is plain and unlimited.
func ConsoleOptionsFromTerminal(fd int) ConsoleOptions {
	opts := ConsoleOptions{}
	if !term.IsTerminal(fd) {
		return opts
	}
	opts.Color = true
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		opts.Width = w
	}
	tracer().Debugf("dump: terminal output, width = %d", opts.Width)
	return opts
}

// indentWidth is the number of columns treeprint indents per level.
const indentWidth = 4

// minLabel is the minimum number of runes kept of a truncated key.
const minLabel = 8

type palette struct {
	key, size, empty *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		key:   color.New(color.FgBlue),
		size:  color.New(color.FgHiBlack),
		empty: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.key, p.size, p.empty} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Text draws t as an indented tree. Every node shows its key followed by the
// size of its subtree in brackets. A missing child of a node with one child
// is shown as '∅'.
func Text[K any](w io.Writer, t jtree.Tree[K], opts ConsoleOptions) error {
	p := newPalette(opts.Color)
	tp := treeprint.New()
	e := t.Expose()
	if e.IsLeaf() {
		tp.SetValue(p.empty.Sprint("∅"))
	} else {
		tp.SetValue(label(e.Key, t.Size(), 0, opts, p))
		addChildren(tp, e, 1, opts, p)
	}
	_, err := io.WriteString(w, tp.String())
	return err
}

func addChildren[K any](tp treeprint.Tree, e jtree.Exposed[K], depth int, opts ConsoleOptions, p palette) {
	if e.Left.IsEmpty() && e.Right.IsEmpty() {
		return
	}
	for _, child := range []jtree.Tree[K]{e.Left, e.Right} {
		ce := child.Expose()
		if ce.IsLeaf() {
			tp.AddNode(p.empty.Sprint("∅"))
			continue
		}
		l := label(ce.Key, child.Size(), depth, opts, p)
		if ce.Left.IsEmpty() && ce.Right.IsEmpty() {
			tp.AddNode(l)
			continue
		}
		addChildren(tp.AddBranch(l), ce, depth+1, opts, p)
	}
}

func label[K any](key K, size, depth int, opts ConsoleOptions, p palette) string {
	k := fmt.Sprint(key)
	s := fmt.Sprintf("[%d]", size)
	if opts.Width > 0 {
		avail := opts.Width - depth*indentWidth - len(s) - 1
		k = truncate(k, max(avail, minLabel))
	}
	return p.key.Sprint(k) + " " + p.size.Sprint(s)
}

// truncate shortens s to at most n runes, marking the cut with '…'.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
