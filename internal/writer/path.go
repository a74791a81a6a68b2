package writer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// UnsafePathError reports a block path that must not be written because it
// could escape the output directory.
type UnsafePathError struct {
	Path   string
	Reason string
}

func (e *UnsafePathError) Error() string {
	return fmt.Sprintf("unsafe path %q: %s", e.Path, e.Reason)
}

// ValidatePath checks that rel, resolved against root, stays inside root.
// Paths containing "..", absolute paths, and anything that canonicalizes to
// a location outside root are rejected with *UnsafePathError. Block paths
// come from untrusted model output, so this runs before every write.
func ValidatePath(rel, root string) error {
	if strings.Contains(rel, "..") {
		return &UnsafePathError{Path: rel, Reason: "contains '..'"}
	}
	if strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, "\\") {
		return &UnsafePathError{Path: rel, Reason: "path is absolute"}
	}

	full, err := filepath.Abs(filepath.Join(root, rel))
	if err != nil {
		return fmt.Errorf("resolving %s: %w", rel, err)
	}
	base, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return &UnsafePathError{Path: rel, Reason: "escapes output directory"}
	}
	return nil
}
