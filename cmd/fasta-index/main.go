// cmd/fasta-index/main.go
package main

import (
	"tolasm/internal/appshell"
	"tolasm/internal/indexapp"
)

func main() { appshell.Main(indexapp.RunContext) }
