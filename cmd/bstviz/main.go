package main

import (
	"github.com/bstviz/bstviz/pkg/cmd"
)

func main() {
	cmd.Execute()
}
