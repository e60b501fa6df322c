package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	UserPrefix      = "You: "
	AssistantPrefix = "AI: "
)

var Separator = strings.Repeat("=", 50)

// Reader reads user input one line at a time.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r. Passing an existing *Reader returns it so buffered input is not lost.
func NewReader(r io.Reader) *Reader {
	if cr, ok := r.(*Reader); ok {
		return cr
	}
	return &Reader{r: bufio.NewReader(r)}
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// ReadLine returns the next line with only its line terminator removed.
// A final unterminated line is returned with a nil error; io.EOF follows it.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Ask prints the user prompt and reads the answer.
func Ask(w io.Writer, r *Reader) (string, error) {
	fmt.Fprint(w, "\n"+UserPrefix)
	return r.ReadLine()
}

func Reply(w io.Writer, text string) {
	fmt.Fprintf(w, "\n%s%s\n", AssistantPrefix, text)
}

// Banner prints lines framed by separators, preceded by a blank line.
func Banner(w io.Writer, lines ...string) {
	fmt.Fprintln(w, "\n"+Separator)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, Separator)
}
