package internal

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidUTF8 is returned by Scan when an input line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Scan reads src line by line and writes the formatted output of every line
// to dst. Output for a line is flushed before the next one is read. It returns
// nil at end of input or when ctx is done.
func Scan(ctx context.Context, src io.Reader, dst io.Writer) error {
	in := bufio.NewReader(src)
	out := bufio.NewWriter(dst)
	var line uint64

	for {
		lineData, err := in.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrapf(err, "reading line %d", line+1)
		}
		if len(lineData) == 0 && errors.Is(err, io.EOF) {
			return nil
		}
		line++

		lineData = trimNewline(lineData)
		if !utf8.Valid(lineData) {
			return errors.Wrapf(ErrInvalidUTF8, "reading line %d", line)
		}

		if err := PrettyPrint(out, string(lineData)); err != nil {
			return errors.Wrapf(err, "writing line %d", line)
		}
		if err := out.Flush(); err != nil {
			return errors.Wrapf(err, "writing line %d", line)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

// PrettyPrint writes every line Format produces for raw to w.
func PrettyPrint(w io.Writer, raw string) error {
	for _, l := range Format(raw) {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// Format renders one input line. Lines that do not decode as a LogRecord are
// returned unchanged as the only element.
func Format(raw string) []string {
	var rec LogRecord
	if !TryHandleJson([]byte(raw), &rec) {
		return []string{raw}
	}
	return DefaultPalette.Render(&rec)
}

// Render returns the header line followed by one line per optional field
// present in rec: stack trace, exc_info, exception type, exception message.
func (p Palette) Render(rec *LogRecord) []string {
	style := p.LevelStyle(rec.Level)
	lines := []string{fmt.Sprintf("[%s] %s [%s] %s",
		p.TimeColor.Sprint(rec.Timestamp),
		style.Level.Sprint(rec.Level),
		p.LoggerColor.Sprint(rec.LoggerName),
		style.Message.Sprint(rec.Message),
	)}

	if rec.StackTrace != nil {
		lines = append(lines, p.StackTraceColor.Sprint(*rec.StackTrace))
	}
	if rec.ExcInfo != nil {
		lines = append(lines, p.ExcInfoColor.Sprint(*rec.ExcInfo))
	}
	if exc := rec.Exception; exc != nil {
		if exc.ExceptionType != nil {
			lines = append(lines, p.LabelColor.Sprint("Exception type")+": "+p.ExceptionTypeColor.Sprint(*exc.ExceptionType))
		}
		if exc.Message != nil {
			lines = append(lines, p.LabelColor.Sprint("Message")+": "+p.ExceptionMessageColor.Sprint(*exc.Message))
		}
	}

	return lines
}

// trimNewline strips a trailing "\n" or "\r\n". A lone "\r" is kept.
func trimNewline(b []byte) []byte {
	if !bytes.HasSuffix(b, []byte("\n")) {
		return b
	}
	return bytes.TrimSuffix(b[:len(b)-1], []byte("\r"))
}
