package main

import (
	"scaffold/internal/appshell"
	"scaffold/internal/reportapp"
)

func main() { appshell.Main(reportapp.RunContext) }
