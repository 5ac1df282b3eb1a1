package main

import (
	"github.com/charmbracelet/vlist/internal/cmd"
)

func main() {
	cmd.Execute()
}
