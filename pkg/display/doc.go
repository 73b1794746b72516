// Package display renders the role table of a populated registry.
//
// A registry snapshot is flattened into Rows (one per sublist slot, one for
// each role that was never mapped) and written in one of several formats:
// rich terminal output, plain text, or JSON, YAML and TOML for machines.
// DetectFormat picks between terminal and text from the output stream.
package display
