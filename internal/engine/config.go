package engine

import "time"

// Surface and grid dimensions (in pixels / cells).
const (
	CellSize    = 20
	SurfaceSize = 400
	CellCount   = SurfaceSize / CellSize // 20
)

// TickInterval is the fixed cadence at which the snake advances one cell.
const TickInterval = 150 * time.Millisecond

// Initial state.
var (
	StartCell      = Point{X: 10, Y: 10}
	StartFood      = Point{X: 15, Y: 15}
	StartDirection = Right
)

// Food placement.
const maxFoodAttempts = 64

// Clock backlog cap (ticks); a stalled window does not fast-forward the game.
const maxTickBacklog = 4
