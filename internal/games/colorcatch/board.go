package colorcatch

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/color-catch/internal/core"
)

var (
	// ErrInvalidGridSize is returned when a board is requested with a side below 1.
	ErrInvalidGridSize = errors.New("colorcatch: grid size must be at least 1")

	// ErrPaletteTooSmall is returned when the palette has fewer distinct
	// colors than the board has pairs.
	ErrPaletteTooSmall = errors.New("colorcatch: palette too small for grid")
)

// DefaultPalette is the set of tile colors pairs are drawn from.
// Twelve colors cover the largest (5x5) board without reuse.
var DefaultPalette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorPurple,
	core.ColorCyan,
	core.ColorPink,
	core.ColorWhite,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorMagenta,
}

// DefaultFiller is the neutral color of the unpaired tile on odd boards.
const DefaultFiller = core.ColorGray

// Tile is a single grid cell.
type Tile struct {
	Index int
	Color core.Color
}

// Board is an immutable square grid of tile colors stored row-major.
// Boards are replaced wholesale, never patched.
type Board struct {
	size   int
	filler core.Color
	colors []core.Color
}

// NewBoard builds a shuffled board of size*size tiles. Colors are drawn
// without replacement from palette, each chosen color appears exactly twice,
// and on odd boards the single leftover slot gets the filler color.
// The filler is never drawn as a pair color even if the palette lists it.
func NewBoard(size int, palette []core.Color, filler core.Color, rng *rand.Rand) (Board, error) {
	if size < 1 {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidGridSize, size)
	}

	pool := distinctColors(palette, filler)
	total := size * size
	pairs := total / 2
	if pairs > len(pool) {
		return Board{}, fmt.Errorf("%w: %dx%d needs %d colors, palette has %d",
			ErrPaletteTooSmall, size, size, pairs, len(pool))
	}

	// Partial Fisher-Yates picks the pair colors without replacement.
	for i := 0; i < pairs; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	colors := make([]core.Color, 0, total)
	for _, c := range pool[:pairs] {
		colors = append(colors, c, c)
	}
	if total%2 == 1 {
		colors = append(colors, filler)
	}

	rng.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})

	return Board{size: size, filler: filler, colors: colors}, nil
}

// MaxGridSize returns the largest square board a palette can fill.
func MaxGridSize(palette []core.Color, filler core.Color) int {
	n := len(distinctColors(palette, filler))
	size := 0
	for (size+1)*(size+1)/2 <= n {
		size++
	}
	return size
}

func distinctColors(palette []core.Color, filler core.Color) []core.Color {
	seen := make(map[core.Color]bool, len(palette))
	out := make([]core.Color, 0, len(palette))
	for _, c := range palette {
		if c == filler || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Size returns the side length of the grid.
func (b Board) Size() int {
	return b.size
}

// Len returns the number of tiles.
func (b Board) Len() int {
	return len(b.colors)
}

// Color returns the color of the tile at index.
func (b Board) Color(index int) core.Color {
	return b.colors[index]
}

// Filler returns the filler color this board was built with.
func (b Board) Filler() core.Color {
	return b.filler
}

// HasFiller reports whether the board has an unpaired filler tile.
func (b Board) HasFiller() bool {
	return len(b.colors)%2 == 1
}

// PairedTiles returns how many tiles belong to a pair.
func (b Board) PairedTiles() int {
	return len(b.colors) - len(b.colors)%2
}

// Tiles returns a copy of the board as a tile slice.
func (b Board) Tiles() []Tile {
	tiles := make([]Tile, len(b.colors))
	for i, c := range b.colors {
		tiles[i] = Tile{Index: i, Color: c}
	}
	return tiles
}

// Colors returns a copy of the tile colors in index order.
func (b Board) Colors() []core.Color {
	out := make([]core.Color, len(b.colors))
	copy(out, b.colors)
	return out
}

// Index converts a (row, col) position to a tile index.
func (b Board) Index(row, col int) int {
	return row*b.size + col
}

// Position converts a tile index to (row, col).
func (b Board) Position(index int) (row, col int) {
	return index / b.size, index % b.size
}
