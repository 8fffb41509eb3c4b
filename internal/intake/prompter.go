package intake

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks one question per line and falls back to the caller's default
// on empty or unparsable answers. Only stream failures are reported.
type Prompter struct {
	in  LineReader
	out io.Writer
}

func NewPrompter(in LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) ReadNumber(prompt string, def float64) (float64, error) {
	line, err := p.ask(prompt, strconv.FormatFloat(def, 'f', -1, 64))
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	return parseDecimal(line, def), nil
}

// parseDecimal accepts plain decimal notation with an optional exponent and
// inf/infinity/nan. Hex floats and digit-separating underscores are answers
// the user did not mean as numbers, so they fall back to def. Values too
// large for a float64 saturate to ±Inf rather than falling back.
func parseDecimal(s string, def float64) float64 {
	if strings.ContainsAny(s, "xX_") {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return v
}

func (p *Prompter) ReadText(prompt string, def string) (string, error) {
	line, err := p.ask(prompt, def)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *Prompter) ask(prompt, def string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s(Default: %s):\n", prompt, def); err != nil {
		return "", err
	}
	line, err := p.in.ReadLine()
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", strings.TrimSpace(prompt), err)
	}
	return strings.TrimSpace(line), nil
}
