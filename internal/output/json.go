package output

import (
	"bytes"
	"io"

	"github.com/tidwall/pretty"
)

// WriteJSON copies a raw response body to w, newline terminated.
func WriteJSON(w io.Writer, raw []byte) error {
	raw = bytes.TrimRight(raw, " \t\r\n")
	if _, err := w.Write(raw); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WritePrettyJSON indents a raw response body for reading.
func WritePrettyJSON(w io.Writer, raw []byte) error {
	_, err := w.Write(pretty.PrettyOptions(raw, &pretty.Options{
		Width:    80,
		Prefix:   "",
		Indent:   "  ",
		SortKeys: false,
	}))
	return err
}
