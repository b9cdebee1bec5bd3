package main

import "github.com/ignaskar/pngcoder/internal/cli"

func main() {
	cli.Execute()
}
