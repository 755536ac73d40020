// Package markdown reads the small markdown subset the generators emit into
// flat blocks that exporters render.
package markdown

import (
	"strings"
	"unicode"
)

type Kind string

const (
	Heading1  Kind = "heading_1"
	Heading2  Kind = "heading_2"
	Heading3  Kind = "heading_3"
	Bullet    Kind = "bulleted_list_item"
	Numbered  Kind = "numbered_list_item"
	Paragraph Kind = "paragraph"
)

type Block struct {
	Kind Kind
	Text string
}

// Parse converts content line by line. Blank lines are dropped; headings
// must start at column zero while list markers may be indented.
func Parse(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		blocks = append(blocks, parseLine(line))
	}
	return blocks
}

func parseLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Block{Kind: Heading3, Text: line[4:]}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: Heading2, Text: line[3:]}
	case strings.HasPrefix(line, "# "):
		return Block{Kind: Heading1, Text: line[2:]}
	}

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "- ") {
		return Block{Kind: Bullet, Text: trimmed[2:]}
	}
	if text, ok := numberedItem(trimmed); ok {
		return Block{Kind: Numbered, Text: text}
	}
	return Block{Kind: Paragraph, Text: line}
}

// numberedItem matches "N. text" where N is one or more digits.
func numberedItem(s string) (string, bool) {
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '.' {
		return "", false
	}
	return strings.TrimSpace(s[i+1:]), true
}

// Chunk splits text into pieces of at most n runes.
func Chunk(text string, n int) []string {
	r := []rune(text)
	if len(r) <= n {
		return []string{text}
	}
	var out []string
	for len(r) > n {
		out = append(out, string(r[:n]))
		r = r[n:]
	}
	if len(r) > 0 {
		out = append(out, string(r))
	}
	return out
}
