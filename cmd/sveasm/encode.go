package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tetratelabs/sveasm/internal/asm"
	"github.com/tetratelabs/sveasm/internal/asm/sve"
)

// stdinName is the file name that selects standard input.
const stdinName = "-"

type encodeCmd struct {
	root   *rootCommand
	output string
}

func getCmdEncode(root *rootCommand) *cobra.Command {
	c := &encodeCmd{root: root}
	cmd := &cobra.Command{
		Use:   "encode [file...]",
		Short: "Encode instruction listings",
		Long: `Encode reads listings of emitter calls, one per line, and prints the encoded
words. Each line holds a method name followed by comma separated operands.
Blank lines and // comments are ignored. Without files, standard input is read.`,
		Example: `
  # Encode a single instruction.
  echo "Add s, z0, z1, z2" | sveasm encode

  # Encode a listing into a raw little-endian binary.
  sveasm encode -o memcpy.bin memcpy.sve`[1:],
		RunE: c.run,
	}
	cmd.Flags().StringVarP(&c.output, "output", "o", "", "write the raw little-endian words to this file instead of listing them")
	return cmd
}

func (c *encodeCmd) run(_ *cobra.Command, args []string) error {
	set, err := c.root.featureSet()
	if err != nil {
		return err
	}
	gs := c.root.gs

	code := asm.NewCodeSegment(nil)
	defer func() {
		if err := code.Unmap(); err != nil {
			c.root.logger.WithError(err).Warn("failed to release the code segment")
		}
	}()
	buf := code.Next()

	e := sve.NewEmitter(buf, sve.NewEmitterConfig().WithFeatures(set).WithLogger(c.root.logger))
	l := newListing(e)

	if len(args) == 0 {
		args = []string{stdinName}
	}
	for _, name := range args {
		if err = c.encodeFile(l, name); err != nil {
			return err
		}
	}

	// Copy out of the mapping before it is released.
	b := append([]byte(nil), buf.Bytes()...)
	if c.output != "" {
		return afero.WriteFile(gs.fs, c.output, b, 0o644)
	}
	return printWords(gs.stdOut, b)
}

func (c *encodeCmd) encodeFile(l *listing, name string) error {
	gs := c.root.gs
	if name == stdinName {
		return l.encode("<stdin>", gs.stdIn)
	}
	f, err := gs.fs.Open(name)
	if err != nil {
		return fmt.Errorf("error reading listing: %w", err)
	}
	defer f.Close()
	return l.encode(name, f)
}

// printWords lists each word with its byte offset.
func printWords(w io.Writer, b []byte) error {
	for offset := 0; offset+4 <= len(b); offset += 4 {
		if _, err := fmt.Fprintf(w, "%04x: %08x\n", offset, binary.LittleEndian.Uint32(b[offset:])); err != nil {
			return err
		}
	}
	return nil
}
