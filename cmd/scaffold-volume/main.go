package main

import (
	"scaffold/internal/appshell"
	"scaffold/internal/volumeapp"
)

func main() { appshell.Main(volumeapp.RunContext) }
