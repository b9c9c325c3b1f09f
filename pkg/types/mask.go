package types

import "strings"

// HeartMask is the fixed board template. 'X' cells are participant
// slots, spaces are empty. The grid renderer and the capacity bound
// both derive from this shape.
var HeartMask = []string{
	" XX   XX ",
	"XXXXXXXXX",
	"XXXXXXXXX",
	" XXXXXXX ",
	"  XXXXX  ",
	"   XXX   ",
	"    X    ",
}

// Capacity returns the total number of participant slots in the mask.
func Capacity() int {
	n := 0
	for _, row := range HeartMask {
		n += strings.Count(row, "X")
	}
	return n
}
