// cmd/motifmask/main.go
package main

import (
	"motifmask/internal/app"
	"motifmask/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
