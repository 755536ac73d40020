package calendar

import (
	"unicode/utf16"

	"github.com/linskybing/catalyst/internal/domain/ticket"
)

// Palette is the fixed set of badge colours ids hash into. The order is part
// of the contract: reordering changes every derived colour.
var Palette = []string{
	"#3B82F6", // blue
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
	"#6366F1", // indigo
	"#84CC16", // lime
}

var priorityColors = map[ticket.Priority]string{
	ticket.PriorityUrgent: "#EF4444",
	ticket.PriorityHigh:   "#F97316",
	ticket.PriorityMedium: "#EAB308",
	ticket.PriorityLow:    "#22C55E",
}

// ColorForID hashes id into Palette. The hash is the 32-bit
// h = c + (h<<5) - h over UTF-16 code units, so the web client computes the
// same colour for the same id.
func ColorForID(id string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(id)) {
		h = int32(c) + (h << 5) - h
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return Palette[abs%int64(len(Palette))]
}

// PriorityColor returns the colour for a priority, or "" for none.
func PriorityColor(p ticket.Priority) string {
	return priorityColors[p]
}
