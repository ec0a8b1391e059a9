package kfmt

import "io"

// PrefixWriter is an io.Writer that injects Prefix at the start of every
// line written to Sink. Subsystems use it to tag their output, e.g.
// "[proc] ".
type PrefixWriter struct {
	Sink   io.Writer
	Prefix []byte

	midLine bool
}

// Write writes p to the sink, emitting the prefix before the first byte of
// each line. The returned count excludes prefix bytes.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var written, start int

	for i := 0; i < len(p); i++ {
		if !w.midLine {
			w.Sink.Write(w.Prefix)
			w.midLine = true
		}

		if p[i] != '\n' {
			continue
		}

		n, err := w.Sink.Write(p[start : i+1])
		written += n
		if err != nil {
			return written, err
		}
		start = i + 1
		w.midLine = false
	}

	if start < len(p) {
		n, err := w.Sink.Write(p[start:])
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
