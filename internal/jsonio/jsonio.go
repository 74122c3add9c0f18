// Package jsonio is the JSON layer shared by the API handlers and the CLI
// writer. Encoding goes through sonic; the function-variable indirection
// keeps the rest of the codebase off any particular JSON package.
package jsonio

import (
	"io"

	"github.com/bytedance/sonic"
)

// Encoder is the streaming encoder surface handlers use.
type Encoder interface {
	Encode(v any) error
}

var (
	// Marshal returns the JSON encoding of v.
	Marshal = sonic.Marshal

	// MarshalIndent is like Marshal with indented output, used for the
	// per-document files the CLI writes.
	MarshalIndent = sonic.MarshalIndent

	// Unmarshal parses JSON data into v.
	Unmarshal = sonic.Unmarshal
)

// NewEncoder returns a streaming encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return sonic.ConfigDefault.NewEncoder(w)
}
