package main

import "github.com/LeJamon/gocorepc/internal/cli"

func main() {
	cli.Execute()
}
