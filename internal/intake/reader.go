package intake

import (
	"bufio"
	"errors"
	"io"
)

// ErrInputClosed is returned when the input ends before a prompt is answered.
var ErrInputClosed = errors.New("intake: input closed")

// LineReader yields one line of user input per call, without the trailing
// newline.
type LineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	sc *bufio.Scanner
}

// NewScanner adapts r into a LineReader.
func NewScanner(r io.Reader) LineReader {
	return &scannerReader{sc: bufio.NewScanner(r)}
}

func (s *scannerReader) ReadLine() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", ErrInputClosed
}
