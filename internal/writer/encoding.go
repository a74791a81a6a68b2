package writer

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ResolveEncoding maps an IANA charset name ("utf-8", "latin1", ...) to an
// output encoding. An empty name selects UTF-8. The driver resolves the name
// once, before any block is written, so a bad --encoding fails the whole run
// instead of erroring per file.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}
