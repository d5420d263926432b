package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrPrompt indicates the console dialogue ended early or got a malformed token.
var ErrPrompt = errors.New("input: prompt")

// maxPrealloc bounds slice capacity taken from user-typed counts.
const maxPrealloc = 1024

// Prompt runs the step-by-step console dialogue on r/w: number of places,
// their names, number of routes, then one "source destination weight" triple
// per route. Tokens are whitespace separated, so several answers may be given
// on one line.
func Prompt(r io.Reader, w io.Writer) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("%w: reading %s: %v", ErrPrompt, what, err)
			}

			return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrPrompt, what)
		}

		return sc.Text(), nil
	}
	count := func(what string) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrPrompt, what, tok)
		}

		return n, nil
	}

	doc := &Document{}

	fmt.Fprint(w, "Enter the number of Places: ")
	nv, err := count("number of places")
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, "Enter the names of Places:")
	doc.Vertices = make([]string, 0, min(nv, maxPrealloc))
	for i := 0; i < nv; i++ {
		fmt.Fprintf(w, "Enter name for Place %d: ", i+1)
		name, err := next(fmt.Sprintf("place %d", i+1))
		if err != nil {
			return nil, err
		}
		doc.Vertices = append(doc.Vertices, name)
	}

	fmt.Fprint(w, "Enter the number of routes: ")
	ne, err := count("number of routes")
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, "Enter the Source, Destination and Distance:")
	doc.Edges = make([]EdgeDoc, 0, min(ne, maxPrealloc))
	for i := 0; i < ne; i++ {
		fmt.Fprintf(w, "Enter Route %d source, destination, and weight: ", i+1)
		what := fmt.Sprintf("route %d", i+1)
		src, err := next(what)
		if err != nil {
			return nil, err
		}
		dst, err := next(what)
		if err != nil {
			return nil, err
		}
		tok, err := next(what)
		if err != nil {
			return nil, err
		}
		weight, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s weight must be an integer, got %q", ErrPrompt, what, tok)
		}
		doc.Edges = append(doc.Edges, EdgeDoc{From: src, To: dst, Weight: weight})
	}
	fmt.Fprintln(w)

	return doc, nil
}
