package life

import "torlife/pkg/core"

// Seeder writes an initial population onto a cleared board.
type Seeder func(u *Universe, seed int64)

var patterns = map[string]Seeder{}

// RegisterPattern adds a seed pattern under the provided name.
func RegisterPattern(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	patterns[name] = s
}

// Patterns exposes the registry of available seed patterns.
func Patterns() map[string]Seeder {
	return patterns
}

// Seed clears the board and applies the named pattern. Unknown names fall
// back to the default pattern. The generation counter restarts at zero.
func (u *Universe) Seed(name string, seed int64) {
	u.Clear()
	s, ok := patterns[name]
	if !ok {
		s = patterns["default"]
	}
	s(u, seed)
}

// seedDefault applies the fixed periodic pattern used on construction.
func seedDefault(g *core.ByteGrid) {
	cells := g.Cells()
	for i := range cells {
		if i%2 == 0 || i%7 == 0 {
			cells[i] = Alive
		} else {
			cells[i] = Dead
		}
	}
}

func init() {
	RegisterPattern("default", func(u *Universe, _ int64) {
		seedDefault(u.cur)
	})
	RegisterPattern("random", func(u *Universe, seed int64) {
		u.Reset(seed)
	})
	RegisterPattern("block", func(u *Universe, _ int64) {
		u.SetCells([]Point{{1, 1}, {1, 2}, {2, 1}, {2, 2}})
	})
	RegisterPattern("blinker", func(u *Universe, _ int64) {
		u.SetCells([]Point{{2, 1}, {2, 2}, {2, 3}})
	})
	RegisterPattern("glider", func(u *Universe, _ int64) {
		u.SetCells([]Point{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}})
	})
}
