package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

type interaction struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns the ports.Interaction bound to stdin/stdout.
func New() ports.Interaction {
	return NewWithStreams(os.Stdin, os.Stdout)
}

// NewWithStreams allows binding the prompts to arbitrary streams.
func NewWithStreams(in io.Reader, out io.Writer) ports.Interaction {
	return &interaction{in: bufio.NewReader(in), out: out}
}

func (t *interaction) Confirm(message string) (bool, error) {
	answer, err := t.prompt(message + " (y/N) ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

func (t *interaction) PromptSecret(message string) (string, error) {
	return t.prompt(message + " ")
}

func (t *interaction) PromptText(message string) (string, error) {
	return t.prompt(message + " ")
}

func (t *interaction) prompt(message string) (string, error) {
	fmt.Fprint(t.out, message)
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
