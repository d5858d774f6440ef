package main

import "github.com/mdlint/mdlint/cmd/mdlint"

func main() { mdlint.Execute() }
