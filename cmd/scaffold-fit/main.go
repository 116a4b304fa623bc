package main

import (
	"scaffold/internal/appshell"
	"scaffold/internal/fitapp"
)

func main() { appshell.Main(fitapp.RunContext) }
