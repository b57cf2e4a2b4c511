package pathfinder

import "errors"

// ErrNoPath indicates the A* search exhausted its frontier without reaching
// the goal pose. Callers do not normally see this: Search reports failure
// via its found return value, and pair tables record UnreachableCost
// instead of propagating an error, matching the source's policy of
// localizing per-pair failures to an inflated cost.
var ErrNoPath = errors.New("pathfinder: no path to goal pose")
