package main

import "github.com/thenoetrevino/tablero/cmd"

func main() {
	cmd.Main()
}
