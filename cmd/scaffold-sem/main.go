package main

import (
	"scaffold/internal/appshell"
	"scaffold/internal/semapp"
)

func main() { appshell.Main(semapp.RunContext) }
