package meta

// DefaultDepth is the minimax lookahead, in plies, when none is configured.
const DefaultDepth = 3

// MaxTurns bounds a refereed game. A game has at most 60 placements; the
// rest is headroom for passes.
const MaxTurns = 128

// Unlimited is the msLeft value meaning no time limit.
const Unlimited = -1

// DefaultAddr is where the agent HTTP server listens.
const DefaultAddr = ":8080"
