package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	// ErrEmptyInput is returned when no usable location was given
	ErrEmptyInput = errors.New("no location provided; enter a city name, IP address, latitude/longitude (decimal degrees), US zipcode, UK postcode or Canada postal code")

	// ErrTooManyArgs is returned for more than one positional argument
	ErrTooManyArgs = errors.New(`invalid arguments: use "" quotations if the location contains whitespace`)
)

const prompt = "Enter Location: "

// Resolver produces the location string from an argument or a prompt
type Resolver struct {
	In          io.Reader
	Out         io.Writer // prompt destination
	Interactive bool      // prompt only when a person is at the terminal
}

// NewStdinResolver prompts on stdout when stdin is a terminal
func NewStdinResolver() *Resolver {
	return &Resolver{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Resolve returns the trimmed location from args (program name excluded) or from one line of input
func (r *Resolver) Resolve(args []string) (string, error) {
	if len(args) > 1 {
		return "", ErrTooManyArgs
	}
	if len(args) == 1 {
		if loc := strings.TrimSpace(args[0]); loc != "" {
			return loc, nil
		}
	}

	if r.In == nil {
		return "", ErrEmptyInput
	}
	if r.Interactive && r.Out != nil {
		fmt.Fprint(r.Out, prompt)
	}

	// A closed or empty stdin ends with EOF so this never blocks forever on a pipe
	line, err := bufio.NewReader(r.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read location: %w", err)
	}
	loc := strings.TrimSpace(line)
	if loc == "" {
		return "", ErrEmptyInput
	}
	return loc, nil
}
