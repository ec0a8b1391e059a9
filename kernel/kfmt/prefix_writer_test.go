package kfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixWriter(t *testing.T) {
	specs := []struct {
		writes []string
		exp    string
	}{
		{[]string{""}, ""},
		{[]string{"line"}, "[proc] line"},
		{[]string{"a\nb\n"}, "[proc] a\n[proc] b\n"},
		{[]string{"par", "tial\n", "next"}, "[proc] partial\n[proc] next"},
		{[]string{"\n\n"}, "[proc] \n[proc] \n"},
	}

	for specIndex, spec := range specs {
		var buf bytes.Buffer
		w := PrefixWriter{Sink: &buf, Prefix: []byte("[proc] ")}

		for _, s := range spec.writes {
			n, err := w.Write([]byte(s))
			assert.NoError(t, err)
			assert.Equal(t, len(s), n, "spec %d", specIndex)
		}

		assert.Equal(t, spec.exp, buf.String(), "spec %d", specIndex)
	}
}
