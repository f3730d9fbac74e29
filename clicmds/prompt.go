package clicmds

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// prompter asks on the app's reader and prints notices to its writer
type prompter struct {
	in     *bufio.Reader
	out    io.Writer
	assume bool
}

func newPrompter(ctx *cli.Context, assumeYes bool) *prompter {
	var in io.Reader = os.Stdin
	if ctx.App.Reader != nil {
		in = ctx.App.Reader
	}
	return &prompter{in: bufio.NewReader(in), out: ctx.App.Writer, assume: assumeYes}
}

// Confirm reads y/N, anything but y or yes is a no
func (p *prompter) Confirm(prompt string) bool {
	if p.assume {
		return true
	}

	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Notify prints message
func (p *prompter) Notify(message string) {
	fmt.Fprintf(p.out, "!! %s\n", message)
}
