// meta/meta.go
package meta

// MAX_TURNS caps a game when neither capture nor goal happens.
const MAX_TURNS = 200

// EVADER_VISION is the evader's Manhattan sensing radius.
const EVADER_VISION = 3

// EVADER_HISTORY is the number of recent evader positions penalized as oscillation.
const EVADER_HISTORY = 3

// HEAT_WEIGHT scales the evader's per-cell revisit counter.
const HEAT_WEIGHT = 5

// THREAT_RADIUS is the distance within which a visible pursuer repels the evader.
const THREAT_RADIUS = 3

// PURSUER_VISION is the pursuers' sensing radius.
const PURSUER_VISION = 4

// SEARCH_DEPTH is the number of full pursuer/evader alternations searched.
const SEARCH_DEPTH = 2
