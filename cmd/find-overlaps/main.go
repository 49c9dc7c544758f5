// cmd/find-overlaps/main.go
package main

import (
	"tolasm/internal/appshell"
	"tolasm/internal/overlapapp"
)

func main() { appshell.Main(overlapapp.RunContext) }
