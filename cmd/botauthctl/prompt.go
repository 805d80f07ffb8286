package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"botauth/internal/errors"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// passwordPrompt reads secrets from in. Piped input goes through a single buffered
// reader so consecutive prompts consume consecutive lines.
type passwordPrompt struct {
	in     *os.File
	reader *bufio.Reader
}

func newPasswordPrompt(in *os.File) *passwordPrompt {
	return &passwordPrompt{in: in, reader: bufio.NewReader(in)}
}

// read reads a secret without echo from a terminal, or one line from piped input.
func (p *passwordPrompt) read(label string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return readLine(p.reader)
	}

	fmt.Fprint(os.Stderr, label)
	pw, err := readPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	return string(pw), nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "failed to read password from stdin")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
