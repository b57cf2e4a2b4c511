package command

import "errors"

// ErrInvalidTurn indicates a direction change between consecutive poses
// that is not one of the eight cases the compiler knows how to emit. It is
// fatal: it signals a planner bug or a corrupted pose sequence, never a
// condition a caller can route around.
var ErrInvalidTurn = errors.New("command: direction change not in the turn table")

// ErrInvalidSnap indicates a screenshot pose whose facing does not put its
// tagged obstacle squarely in front of the robot, so the left/center/right
// frame offset cannot be derived. Fatal for the same reason as ErrInvalidTurn.
var ErrInvalidSnap = errors.New("command: snap pose is not facing its tagged obstacle")

// ErrUnknownObstacle indicates a pose's ScreenshotID does not match any
// obstacle supplied to Compile.
var ErrUnknownObstacle = errors.New("command: screenshot id has no matching obstacle")
