// Package render writes DOT artefacts to disk and optionally turns them into
// images through an external renderer such as Graphviz.
//
// The algorithm packages never touch the filesystem; render is the single
// output port the CLI goes through.
package render
