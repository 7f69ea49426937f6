package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

func main() {
	doMain(afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:], os.Exit)
}

// doMain is separated out for the purpose of unit testing.
func doMain(fs afero.Fs, stdIn io.Reader, stdOut, stdErr io.Writer, args []string, exit func(code int)) {
	c := newRootCommand(&globalState{fs: fs, stdIn: stdIn, stdOut: stdOut, stdErr: stdErr})
	c.cmd.SetArgs(args)
	if err := c.cmd.Execute(); err != nil {
		fmt.Fprintln(stdErr, err)
		exit(1)
		return
	}
	exit(0)
}
