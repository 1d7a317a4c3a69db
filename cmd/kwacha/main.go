package main

import (
	"fmt"
	"os"

	cc "github.com/ivanpirog/coloredcobra"

	"github.com/kwacha-bank/kwacha/internal/cli"
)

func main() {
	root := cli.NewRootCmd()

	cc.Init(&cc.Config{
		RootCmd:  root,
		Headings: cc.HiCyan + cc.Bold,
		Commands: cc.HiYellow + cc.Bold,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kwacha: %v\n", err)
		os.Exit(1)
	}
}
