package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	content := strings.Join([]string{
		"# Product Requirements",
		"",
		"## Goals",
		"### Detail",
		"- first bullet",
		"   - indented bullet",
		"1. step one",
		"12. step twelve",
		"2.tight spacing",
		"Plain paragraph text",
		"#no space heading",
		"   ",
	}, "\n")

	got := Parse(content)
	want := []Block{
		{Heading1, "Product Requirements"},
		{Heading2, "Goals"},
		{Heading3, "Detail"},
		{Bullet, "first bullet"},
		{Bullet, "indented bullet"},
		{Numbered, "step one"},
		{Numbered, "step twelve"},
		{Numbered, "tight spacing"},
		{Paragraph, "Plain paragraph text"},
		{Paragraph, "#no space heading"},
	}
	assert.Equal(t, want, got)
}

func TestParseHandlesCRLF(t *testing.T) {
	got := Parse("# Title\r\n- item\r\n")
	assert.Equal(t, []Block{{Heading1, "Title"}, {Bullet, "item"}}, got)
}

func TestChunk(t *testing.T) {
	assert.Equal(t, []string{"abc"}, Chunk("abc", 5))
	assert.Equal(t, []string{"ab", "cd", "e"}, Chunk("abcde", 2))
	assert.Equal(t, []string{"éé", "é"}, Chunk("ééé", 2))
}
