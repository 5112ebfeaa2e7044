// Package diagfmt renders a diagnostic Bag in three human/machine
// formats: a colorized terminal form, JSON, and a
// compact binary form for tooling that doesn't want to parse text.
package diagfmt

// PrettyOpts configures Pretty's terminal rendering.
type PrettyOpts struct {
	// Color enables ANSI severity coloring. When false, output is plain text
	// regardless of what the terminal supports.
	Color bool
	// Context, when true, prints the offending source line under every
	// diagnostic with a caret under the reported column.
	Context bool
}

// JSONOpts configures FormatJSON's output.
type JSONOpts struct {
	// Pretty indents the JSON output for readability.
	Pretty bool
}
