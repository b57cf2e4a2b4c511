package pathfinder

// TurnFactor scales rotation cost in the edge-cost formula; kept as a named
// constant rather than inlined 1 because the source exposes it as a tunable.
const TurnFactor = 1

// TurnRadius is the (bigger, smaller) displacement of a turning arc's
// destination relative to its origin, per the motion model's 8-case table.
const (
	TurnRadiusBig   = 2
	TurnRadiusSmall = 2
)

// TurnBaseCost is the additive cost of an accepted turn beyond rotation
// cost, reflecting the mechanical expense of turning versus a straight step.
const TurnBaseCost = 10

// TurnRelaxedPenalty is the further additive cost when a turn is accepted
// despite its intermediate cell being unreachable (non-strict acceptance).
const TurnRelaxedPenalty = 10

// SafeCost discourages, without forbidding, a destination near an
// obstacle's corner.
const SafeCost = 1000

// UnreachableCost is the sentinel cost recorded for a pose pair the search
// could not connect. It propagates rather than erroring: a tour containing
// such a pair is dominated by any feasible alternative.
const UnreachableCost = 1_000_000_000
