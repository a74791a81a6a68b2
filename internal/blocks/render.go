package blocks

import "strings"

const renderSeparator = "================================"

// Render serializes blocks back into the FILE block format, using a canonical
// 32-character '=' separator. Parse(Render(blocks)) yields the same sequence
// for any blocks whose content contains no line matching that separator.
func Render(bs []Block) string {
	var b strings.Builder
	for _, blk := range bs {
		b.WriteString(filePrefix)
		b.WriteString(blk.Path)
		b.WriteByte('\n')
		b.WriteString(renderSeparator)
		b.WriteByte('\n')
		b.WriteString(blk.Content)
		if blk.Content != "" && !strings.HasSuffix(blk.Content, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(renderSeparator)
		b.WriteByte('\n')
		b.WriteString("END FILE\n")
	}
	return b.String()
}
