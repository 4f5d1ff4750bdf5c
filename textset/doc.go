/*
Package textset builds ordered sets of words from text.

Text is split into words at the line-break opportunities defined by Unicode
UAX #14, as implemented by package github.com/npillmayer/uax. Punctuation
surrounding a word is trimmed. Words may optionally be case-folded.

The resulting sets are join trees (package jtree). Vocabulary reads several
texts concurrently and combines the per-text sets with a parallel union.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paraset'
func tracer() tracing.Trace {
	return tracing.Select("paraset")
}
