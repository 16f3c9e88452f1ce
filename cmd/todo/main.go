package main

import (
	"os"

	"Tasker/internal/todocli"
)

func main() {
	svc := todocli.NewService()
	cli := todocli.NewCLI(svc, os.Stdin, os.Stdout)
	cli.Run()
}
