package main

import (
	"fmt"
	"os"

	"github.com/samatild/azvmprofilefetcher/cmd"
	"github.com/samatild/azvmprofilefetcher/internal/exit"
)

func main() {
	root := cmd.NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exit.CodeOf(err))
	}
}
