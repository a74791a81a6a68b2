package config

import (
	"fmt"

	"github.com/okuznetsov/aisplit/internal/writer"
)

// Validate rejects defaults the run could not use. The output directory is
// the user's own choice and is not checked here; block paths are guarded by
// the writer at write time.
func Validate(d *Defaults) error {
	if d.Encoding != "" {
		if _, err := writer.ResolveEncoding(d.Encoding); err != nil {
			return fmt.Errorf("defaults file: %w", err)
		}
	}
	return nil
}
