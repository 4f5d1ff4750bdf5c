package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/paraset/jtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders t as nested unordered lists:
//
//	<ul class="jtree">
//	  <li><span class="key">2</span><span class="size">3</span>
//	    <ul> … left and right child … </ul>
//	  </li>
//	</ul>
//
// A missing child of a node with one child is rendered as an empty list item
// of class "empty".
func HTML[K any](w io.Writer, t jtree.Tree[K]) error {
	root := element(atom.Ul, "jtree")
	if !t.IsEmpty() {
		root.AppendChild(htmlNode(t))
	}
	return html.Render(w, root)
}

func htmlNode[K any](t jtree.Tree[K]) *html.Node {
	e := t.Expose()
	li := element(atom.Li, "")
	key := element(atom.Span, "key")
	key.AppendChild(text(fmt.Sprint(e.Key)))
	size := element(atom.Span, "size")
	size.AppendChild(text(strconv.Itoa(t.Size())))
	li.AppendChild(key)
	li.AppendChild(size)
	if e.Left.IsEmpty() && e.Right.IsEmpty() {
		return li
	}
	ul := element(atom.Ul, "")
	for _, child := range []jtree.Tree[K]{e.Left, e.Right} {
		if child.IsEmpty() {
			ul.AppendChild(element(atom.Li, "empty"))
			continue
		}
		ul.AppendChild(htmlNode(child))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
