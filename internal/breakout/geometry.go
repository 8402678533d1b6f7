// Package breakout implements the Super Breakout simulation: the brick
// lattice, ball and paddle physics, score pacing, difficulty progression and
// the per-tick state machine. It performs no I/O; frontends feed it input
// and time and draw from its Snapshot.
package breakout

// Field layout in cells. The active lattice sits inside a one-cell wall on
// the left, right and top. The rows below it are open space down to the
// paddle lane.
const (
	Columns = 13 // Brick columns
	Rows    = 21 // Active brick rows

	FieldColumns = Columns + 2 // Lattice plus left and right wall
	FieldRows    = 36          // Wall, lattice, open space and paddle lane

	PaddleRow = 30 // Field row holding the paddle

	ScoreDigits = 5
	ScoreMargin = 0.12 // Share of the surface height drawn above the field
)

// Field dimensions as fractions of the playing area.
const (
	CellWidth  = 1.0 / FieldColumns
	CellHeight = 1.0 / FieldRows

	PaddleHeight     = CellHeight
	PaddleStartWidth = 1.5 * CellWidth
	PaddleY          = PaddleRow*CellHeight + PaddleHeight/2 // Paddle centre

	BallSize = 0.6 * PaddleHeight
)

// Ball centre limits that trigger a wall bounce.
const (
	leftWall  = CellWidth + BallSize/2
	rightWall = 1 - CellWidth - BallSize/2
	topWall   = CellHeight + BallSize/2
)

// BrickCenter returns the field position of a lattice cell's centre.
func BrickCenter(col, row int) (x, y float64) {
	return (float64(col) + 1.5) * CellWidth, (float64(row) + 1.5) * CellHeight
}
