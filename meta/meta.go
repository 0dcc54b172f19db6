// meta/meta.go
package meta

// BOARD_SIZE is the default number of dots per side of a dots and boxes board.
const BOARD_SIZE = 3

// DEPTH is the default search depth of both players.
const DEPTH = 3

// GAMES is the default number of games per experiment match-up.
const GAMES = 10

// OPENINGS is the default number of random moves played before the searchers take over.
const OPENINGS = 2

// PARALLEL is the default number of experiment games played at the same time.
const PARALLEL = 4

// OUTPUT is the default directory experiment results are written under.
const OUTPUT = "results"
