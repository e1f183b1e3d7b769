// Package client implements the interactive client application runtime.
//
// It wires the conversation workflow, the key backup commands, and the
// client services into a single process lifecycle driven by a line-based
// command loop.
package client
