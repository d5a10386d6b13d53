package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter reads menu input line by line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// creates a new Prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints the label and reads one trimmed line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Amount keeps prompting until a well-formed amount is typed.
func (p *Prompter) Amount(label string) (decimal.Decimal, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := ParseAmount(s)
		if err == nil {
			return amount, nil
		}
		fmt.Fprintln(p.out, "please enter a positive amount like 25 or 25.50")
	}
}
