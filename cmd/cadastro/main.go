package main

import "github.com/dmitrymomot/cadastro/internal/cli"

func main() {
	cli.Execute()
}
