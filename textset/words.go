package textset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/paraset/forkjoin"
	"github.com/npillmayer/paraset/jtree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/sync/errgroup"
)

// Options controls word extraction.
type Options struct {
	Fold   bool // lower-case every word
	MinLen int  // drop words with fewer runes
}

// Words reads text from r and returns base with all words of the text added.
// base must be a tree created by jtree.New (it may be empty); its
// configuration is used for the result.
func Words(base jtree.Tree[string], r io.Reader, opts Options) (jtree.Tree[string], error) {
	set, n, err := wordsOf(base, r, opts)
	if err != nil {
		return base, err
	}
	tracer().Debugf("textset: %d words scanned", n)
	return set, nil
}

// wordsOf is Words without tracing, for use off the calling goroutine.
func wordsOf(base jtree.Tree[string], r io.Reader, opts Options) (jtree.Tree[string], int, error) {
	words, err := scan(r, opts)
	if err != nil {
		return base, 0, err
	}
	return base.InsertAll(words...), len(words), nil
}

// Vocabulary reads all texts concurrently and returns base with the words of
// all texts added. If reading any text fails, the remaining texts are
// abandoned and the first error is returned.
func Vocabulary(ctx context.Context, base jtree.Tree[string], opts Options, texts ...io.Reader) (jtree.Tree[string], error) {
	sets := make([]jtree.Tree[string], len(texts))
	counts := make([]int, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		g.Go(func() error {
			set, n, err := wordsOf(base.Empty(), &ctxReader{ctx: ctx, r: text}, opts)
			if err != nil {
				return fmt.Errorf("text #%d: %w", i, err)
			}
			sets[i], counts[i] = set, n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("textset: %v", err)
		return base, err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	tracer().Debugf("textset: %d words scanned in %d texts", total, len(texts))
	return base.Union(unionAll(base.Config().Pool, sets)), nil
}

// unionAll combines sets pairwise, as a balanced tree of unions.
func unionAll(pool *forkjoin.Pool, sets []jtree.Tree[string]) jtree.Tree[string] {
	switch len(sets) {
	case 0:
		return jtree.Tree[string]{}
	case 1:
		return sets[0]
	}
	mid := len(sets) / 2
	work := 0
	for _, s := range sets {
		work += s.Size()
	}
	l, r := forkjoin.Pair(pool, work,
		func() jtree.Tree[string] { return unionAll(pool, sets[:mid]) },
		func() jtree.Tree[string] { return unionAll(pool, sets[mid:]) },
	)
	return l.Union(r)
}

func scan(r io.Reader, opts Options) ([]string, error) {
	er := &errReader{r: r}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(er))
	var words []string
	for segmenter.Next() {
		w := strings.TrimFunc(string(segmenter.Bytes()), isNotWordRune)
		if w == "" || utf8.RuneCountInString(w) < opts.MinLen {
			continue
		}
		if opts.Fold {
			w = strings.ToLower(w)
		}
		words = append(words, w)
	}
	if er.err != nil {
		return nil, er.err
	}
	return words, nil
}

func isNotWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// errReader remembers the first error other than io.EOF, which the
// segmenter would otherwise treat as end of input.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
