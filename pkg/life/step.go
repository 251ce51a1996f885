package life

// Tick advances the universe by one generation.
//
// The next state is computed entirely from the current buffer into the spare
// buffer, so every neighbor count sees the unmodified previous generation.
// The buffers then swap roles, which keeps the Cells view pointing at a
// fully consistent board between calls.
func (u *Universe) Tick() {
	w, h := u.cur.W, u.cur.H
	src, dst := u.cur.Cells(), u.nxt.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (row + dr + h) % h
					nc := (col + dc + w) % w
					if src[nr*w+nc] != Dead {
						neighbors++
					}
				}
			}
			idx := row*w + col
			alive := src[idx] != Dead
			dst[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				dst[idx] = Alive
			}
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}
