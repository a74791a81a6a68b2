package blocks

import (
	"fmt"
	"strings"
)

// Block represents a single extracted file from an AI response.
type Block struct {
	Path    string // e.g. "task_manager/models.py"
	Content string // content between the separators, verbatim
}

// ParseError reports a malformed block in the input. Parsing aborts on the
// first one; no partial block list is returned.
type ParseError struct {
	Msg  string // "separator not found", "closing separator not found", "expected 'END FILE'"
	Path string // path from the FILE marker that opened the block
	Line int    // 1-based line number for the message
}

func (e *ParseError) Error() string {
	switch e.Msg {
	case "separator not found":
		return fmt.Sprintf("separator not found after FILE %s (line %d)", e.Path, e.Line)
	case "closing separator not found":
		return fmt.Sprintf("closing separator not found for file %s (line %d)", e.Path, e.Line)
	default:
		return fmt.Sprintf("%s after file %s (line %d)", e.Msg, e.Path, e.Line)
	}
}

const filePrefix = "FILE "

// Parse extracts file blocks from an AI response. The expected format is:
//
//	FILE path/to/file.py
//	================================
//	<content>
//	================================
//	END FILE
//
// Anything outside blocks (prose, commentary) is ignored. Blocks are returned
// in order of appearance; a response with no FILE markers yields an empty
// slice. The closing separator must be byte-identical to the opening one, so
// a run of 12 '=' is not closed by a run of 10. Content is captured verbatim,
// line endings included. There is no escaping: a content line that matches
// the opening separator closes the block.
func Parse(text string) ([]Block, error) {
	lines := splitKeepEnds(text)

	idx := 0
	n := len(lines)
	var result []Block

	for idx < n {
		line := strings.TrimSpace(lines[idx])

		if !strings.HasPrefix(line, filePrefix) {
			idx++
			continue
		}

		path := strings.TrimSpace(line[len(filePrefix):])
		startLine := idx + 1
		idx++

		// First separator line
		for idx < n && !isSeparator(strings.TrimSpace(lines[idx])) {
			idx++
		}
		if idx >= n {
			return nil, &ParseError{Msg: "separator not found", Path: path, Line: startLine}
		}
		sepLine := strings.TrimSpace(lines[idx])
		idx++

		// Content runs until the next identical separator
		var content strings.Builder
		for idx < n && strings.TrimSpace(lines[idx]) != sepLine {
			content.WriteString(lines[idx])
			idx++
		}
		if idx >= n {
			return nil, &ParseError{Msg: "closing separator not found", Path: path, Line: startLine}
		}
		idx++ // skip closing separator

		if idx >= n || strings.TrimSpace(lines[idx]) != "END FILE" {
			return nil, &ParseError{Msg: "expected 'END FILE'", Path: path, Line: idx + 1}
		}
		idx++ // skip END FILE

		result = append(result, Block{Path: path, Content: content.String()})
	}

	return result, nil
}

// isSeparator reports whether a trimmed line is a block delimiter: ten or
// more identical '=' or '-' characters and nothing else.
func isSeparator(line string) bool {
	if len(line) < 10 {
		return false
	}
	c := line[0]
	if c != '=' && c != '-' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}

// splitKeepEnds splits text into lines, each retaining its trailing newline.
// A final line without a newline is kept as-is.
func splitKeepEnds(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			return lines
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
		if text == "" {
			return lines
		}
	}
}
