// cmd/pretext-to-asm/main.go
package main

import (
	"tolasm/internal/appshell"
	"tolasm/internal/reprojectapp"
)

func main() { appshell.Main(reprojectapp.RunContext) }
