/*
Package dump renders the shape of join trees for debugging.

Three formats are supported:

  - Text draws the tree to a console, optionally colored,
  - Dot writes a Graphviz DOT digraph,
  - HTML writes nested lists.

Every node is labelled with its key and the size of its subtree. Keys are
formatted with fmt, so key types may implement fmt.Stringer to control their
label.

To inspect a tree during a test, use

	dump.Text(os.Stdout, tree, dump.ConsoleOptionsFromTerminal(1))

or pipe the output of Dot into 'dot -Tsvg'.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paraset'
func tracer() tracing.Trace {
	return tracing.Select("paraset")
}
