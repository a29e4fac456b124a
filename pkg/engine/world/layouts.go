package world

import (
	"fmt"

	"phantomslayer/pkg/engine/rng"
)

// NoLayout is the previous-layout value used before the first level.
const NoLayout = -1

// layouts holds the compiled-in mazes, one string per row.
var layouts = [][]string{
	{ // 0
		"....................",
		".##.##.####.##.##.##",
		".##.........#......#",
		"...#.#.#.##...###.#.",
		"##.#........#####...",
		".....##.##.###....##",
		"####...........##...",
		"...####.#.#.##....##",
		".#...#.........##...",
		"...#...###.#######.#",
		"##..#.#########.....",
		"...#....#.##....#.##",
		".#...##....###.##...",
		"######..##........#.",
		"....##.###.###.##...",
		"#.#..#.###.###...###",
		".##.#.......##.#####",
		"......#####.........",
		"#.#.#.#.###.##.#.#.#",
		"#..................#",
	},
	{ // 1
		"....................",
		"###.###.####.#######",
		".............#######",
		"###.###.####........",
		"..........####.###.#",
		"#.#####.#....#.##...",
		"..#####.##.#....#.#.",
		"#.....#..#...##.....",
		"#.#.#..#...#....##.#",
		".....#.#.#...####...",
		"###.##....###.....#.",
		".......##.....###.#.",
		"######.####.#.###...",
		"............#....#.#",
		".##.##.#.##..###.#..",
		"..#.##.....#......#.",
		"#......#####.####.#.",
		".#.###.............#",
		".#.###.#.#.##.##.#.#",
		"....................",
	},
	{ // 2
		"....................",
		"#.#.#.#.#.###.##.#.#",
		"#.#.#.#....#..#.....",
		"........##..#...#.#.",
		"##.##.#.#.##..#..#..",
		"..#.##....#.#.#.###.",
		"#.#...##.#....##.#..",
		"....#....##.#..#..#.",
		".##.#.##....##...#..",
		"#.#.#..#.#.#..##..##",
		"#..#.#.#####.#..##..",
		".#.#.#...#.....##.#.",
		".......#.#.##.#.....",
		".#.##.##.....##.###.",
		"..###.#..#.#.#..#.##",
		"#..#...#.#.##.#.....",
		"..#..#..#.......#.##",
		".###.#.#.#.#.##.#...",
		".###.#.#.#.####.###.",
		"....................",
	},
	{ // 3
		"....................",
		"#.###.####.####.#.##",
		"#.###......####.....",
		"...##.####..###.##.#",
		".#......###.........",
		"...##.#..##.##.#####",
		"#####..#........#...",
		"#...#.####.####...##",
		"..#.....##...#######",
		".######....#........",
		"...####.####.#.###.#",
		".#...#.......#......",
		"...#...##.##..#####.",
		"#########....######.",
		".#...####.##......#.",
		"...#........#.###...",
		"#.#..####.###..####.",
		"#...###......#.....#",
		"#.#.###.#.#.##.#.#.#",
		"#..................#",
	},
	{ // 4
		"....................",
		".###.####.##.###.#.#",
		"..##.##...##.##..#..",
		"#.......#.#...#.#.#.",
		"#.#.#.###...#.......",
		"..#.#.....#.#.#.#.#.",
		".##.#.##.#..#.#...#.",
		"#.....###.#..#..#...",
		"..#.#..#..##..###.#.",
		"##..##.#.#.##.#.#...",
		"...#...#.#..##..###.",
		".##..#.....#...#.#..",
		".#.##.##.#.#.##....#",
		".......###......###.",
		".#.#.#.#.#.##.#.#.#.",
		"#...#.......#.#.....",
		"..#..#.###.#.#..#.#.",
		".#..##...#...#.##...",
		".##.##.###.#.##.###.",
		"....................",
	},
	{ // 5
		"....................",
		"##.####.##.#.##.#.#.",
		"##.####......#......",
		"......####.#...###.#",
		"##.##..##...####....",
		"#....#..#.########.#",
		"..####.#...........#",
		"#...#....#########..",
		"..##..##...#####.#.#",
		"#....###.#..........",
		".#######...########.",
		"...##...##....#...#.",
		"##....#.###.##..#..#",
		"#######...#....###..",
		"....##..#...##.....#",
		".##....####...####..",
		"....#######.###.##.#",
		"###.................",
		"###.###.#.#.#.#.##.#",
		"###................#",
	},
}

// NumberOfLayouts returns the size of the layout pool.
func NumberOfLayouts() int {
	return len(layouts)
}

// LoadLayout builds the grid for layout id.
func LoadLayout(id int) (*Grid, error) {
	if id < 0 || id >= len(layouts) {
		return nil, fmt.Errorf("layout %d out of range [0,%d)", id, len(layouts))
	}
	g, err := ParseGrid(layouts[id])
	if err != nil {
		return nil, fmt.Errorf("layout %d: %w", id, err)
	}
	g.id = id
	return g, nil
}

// SelectLayout picks a layout uniformly at random, never the previous one,
// and returns it as the active grid.
func SelectLayout(previous int, src rng.Source) *Grid {
	n := len(layouts)
	var id int
	if previous >= 0 && previous < n && n > 1 {
		// Draw from the n-1 other layouts so every candidate is equally likely.
		id = src.Intn(n - 1)
		if id >= previous {
			id++
		}
	} else {
		id = src.Intn(n)
	}
	g, err := LoadLayout(id)
	if err != nil {
		// The tables are compiled in; a parse failure is a programming error.
		panic(err)
	}
	return g
}
