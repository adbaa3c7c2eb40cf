package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A minimal line reader. It writes a prompt before reading each line if the
// prompt is not empty.
type lineReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newLineReader(in io.Reader, out io.Writer, prompt string) *lineReader {
	return &lineReader{bufio.NewReader(in), out, prompt}
}

// ReadLine reads one line with the line ending removed. A final line without a
// line ending is returned without an error; io.EOF is returned on the next
// call.
func (r *lineReader) ReadLine() (string, error) {
	if r.prompt != "" {
		fmt.Fprint(r.out, r.prompt)
	}
	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return chopLineEnding(line), err
}

// Removes a line ending ("\r\n" or "\n") from the end of s.
func chopLineEnding(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
