package command

import "github.com/arenabot/planner/direction"

// turnKey identifies one (from, to) heading change.
type turnKey struct {
	from, to direction.Direction
}

// turnRow gives the command to emit for a heading change depending on the
// sign of the y-coordinate change between the two poses — every one of the
// eight cases is decided by y, even the east/west turns.
type turnRow struct {
	yIncreasing string
	yDecreasing string
}

var turnTable = map[turnKey]turnRow{
	{direction.NORTH, direction.EAST}: {"FR00", "BL00"},
	{direction.NORTH, direction.WEST}: {"FL00", "BR00"},
	{direction.EAST, direction.NORTH}: {"FL00", "BR00"},
	{direction.EAST, direction.SOUTH}: {"BL00", "FR00"},
	{direction.SOUTH, direction.EAST}: {"BR00", "FL00"},
	{direction.SOUTH, direction.WEST}: {"BL00", "FR00"},
	{direction.WEST, direction.NORTH}: {"FR00", "BL00"},
	{direction.WEST, direction.SOUTH}: {"BR00", "FL00"},
}

// turnCommand looks up the command for a heading change from prev to next,
// given the sign of the y displacement between the two poses.
func turnCommand(prev, next direction.Direction, dy int) (string, bool) {
	row, ok := turnTable[turnKey{prev, next}]
	if !ok {
		return "", false
	}
	if dy > 0 {
		return row.yIncreasing, true
	}

	return row.yDecreasing, true
}
