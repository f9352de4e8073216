// Package app wires a parsed configuration to the conversion pipeline. It
// owns the diagnostic logger and returns the formatted result to its caller,
// decoupled from the CLI entrypoint that prints it.
package app
