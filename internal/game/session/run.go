package session

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"detective/internal/errors"
)

// MaxLineLength is the longest input line taken as a choice. Longer lines are drained and rejected.
const MaxLineLength = 4096

// Run plays s over a line-oriented terminal: it prints each prompt, feeds every line read from in to the
// session and writes the resulting text to out until the session is over. Running out of input leaves the
// manor and accuses nobody.
func Run(ctx context.Context, s *Session, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	if err := writeLines(w, s.Start(ctx)); err != nil {
		return err
	}

	r := bufio.NewReader(in)
	for s.Phase() != Done {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "run session")
		}

		if _, err := io.WriteString(w, s.Prompt()); err != nil {
			return errors.Wrap(err, "write prompt")
		}
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "flush prompt")
		}

		line, tooLong, err := readLine(r)
		if errors.Is(err, io.EOF) {
			line = s.EndOfInput()
			if _, err = fmt.Fprintln(w); err != nil {
				return errors.Wrap(err, "write newline")
			}
		} else if err != nil {
			return errors.Wrap(err, "read input")
		}

		var lines []string
		if tooLong {
			lines, err = s.Reject(ctx, line)
		} else {
			lines, err = s.Handle(ctx, line)
		}
		if err != nil {
			return err
		}
		if err = writeLines(w, lines); err != nil {
			return err
		}
	}
	return nil
}

// readLine returns the next line without its line ending. A line longer than MaxLineLength is consumed to
// its end, truncated and flagged. io.EOF is returned only when no input is left.
func readLine(r *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
		read    bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		read = true

		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineLength {
				buf = buf[:MaxLineLength]
				tooLong = true
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}
