// Package mdlint provides the command-line interface for the mdlint tool.
// It configures subcommands (rules, baseline, completion), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/mdlint/mdlint/cmd/mdlint"
//	func main() { mdlint.Execute() }
package mdlint
