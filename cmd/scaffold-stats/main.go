package main

import (
	"scaffold/internal/appshell"
	"scaffold/internal/statsapp"
)

func main() { appshell.Main(statsapp.RunContext) }
