package brush

import "image"

const (
	// MinSize and MaxSize bound the brush radius.
	MinSize = 1
	MaxSize = 3
)

var shapes = [MaxSize + 1][]image.Point{
	1: {{0, 0}},
	2: {
		{0, 0},
		{1, 0}, {1, 1}, {0, 1},
		{-1, 0}, {-1, -1}, {0, -1},
	},
	3: {
		{0, 0},
		{1, 0}, {1, 1}, {0, 1},
		{-1, 0}, {-1, -1}, {0, -1},
		{-2, 0}, {-2, 1}, {-2, -1},
		{-1, 2}, {-1, 1}, {-1, -2},
		{0, 2}, {0, -2},
		{1, 2}, {1, -1}, {1, -2},
		{2, 0}, {2, 1}, {2, -1},
	},
}

// ClampSize limits size to [MinSize, MaxSize].
func ClampSize(size int) int {
	return max(MinSize, min(size, MaxSize))
}

// Offsets returns the cell offsets painted around each point for a brush of
// the given size. The slice is shared; callers must not modify it.
func Offsets(size int) []image.Point {
	return shapes[ClampSize(size)]
}
