// cmd/asm-format/main.go
package main

import (
	"tolasm/internal/appshell"
	"tolasm/internal/formatapp"
)

func main() { appshell.Main(formatapp.RunContext, appshell.ReadsStdin()) }
