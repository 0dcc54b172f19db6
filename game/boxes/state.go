package boxes

import (
	"alphabeta/game"
	"alphabeta/utils"
	"fmt"
	"strings"
)

const (
	PlayerOne = "1"
	PlayerTwo = "2"
)

var players = [2]string{PlayerOne, PlayerTwo}

const unowned = -1

// State is a dots and boxes position on a square grid of size x size dots.
// Lines and box owners are stored in flat slices so that Play can copy them cheaply.
type State struct {
	size       int
	horizontal []bool // size rows of size-1 lines
	vertical   []bool // size-1 rows of size lines
	owners     []int  // (size-1)x(size-1) boxes, index into players or unowned
	scores     [2]int
	current    int // index into players
	drawn      int
}

// New returns the starting position of a board with size x size dots.
func New(size int) *State {
	if size < 2 {
		panic(fmt.Sprintf("board size must be at least 2, got %d", size))
	}

	boxes := (size - 1) * (size - 1)
	s := &State{
		size:       size,
		horizontal: make([]bool, size*(size-1)),
		vertical:   make([]bool, (size-1)*size),
		owners:     make([]int, boxes),
	}
	for i := range s.owners {
		s.owners[i] = unowned
	}
	return s
}

func (s *State) Size() int {
	return s.size
}

func (s *State) Player() string {
	return players[s.current]
}

// Opponent returns the other player's token.
func Opponent(player string) string {
	return utils.Other(players, player)
}

func (s *State) IsTerminal() bool {
	return s.drawn == len(s.horizontal)+len(s.vertical)
}

// LegalMoves lists undrawn lines, horizontal ones first, each in row-major order.
func (s *State) LegalMoves() []game.Move {
	moves := make([]game.Move, 0, len(s.horizontal)+len(s.vertical)-s.drawn)
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size-1; c++ {
			if !s.horizontal[s.hIndex(r, c)] {
				moves = append(moves, Line{Horizontal: true, Row: r, Col: c})
			}
		}
	}
	for r := 0; r < s.size-1; r++ {
		for c := 0; c < s.size; c++ {
			if !s.vertical[s.vIndex(r, c)] {
				moves = append(moves, Line{Horizontal: false, Row: r, Col: c})
			}
		}
	}
	return moves
}

// Play draws the line and returns the resulting position. Completing a box scores it
// for the mover, who then moves again.
func (s *State) Play(move game.Move) game.State {
	line, ok := move.(Line)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	if !s.inBounds(line) || s.isDrawn(line) {
		panic(fmt.Sprintf("illegal move %s", line))
	}

	next := s.copy()
	if line.Horizontal {
		next.horizontal[s.hIndex(line.Row, line.Col)] = true
	} else {
		next.vertical[s.vIndex(line.Row, line.Col)] = true
	}
	next.drawn++

	completed := 0
	for _, box := range s.adjacentBoxes(line) {
		if next.isComplete(box[0], box[1]) {
			next.owners[next.boxIndex(box[0], box[1])] = next.current
			next.scores[next.current]++
			completed++
		}
	}
	if completed == 0 {
		next.current = 1 - next.current
	}
	return next
}

// Score returns the number of boxes owned by player.
func (s *State) Score(player string) int {
	i := utils.FindIndex(players[:], player)
	if i < 0 {
		panic(fmt.Sprintf("unknown player %q", player))
	}
	return s.scores[i]
}

func (s *State) Scores() map[string]int {
	return map[string]int{
		PlayerOne: s.scores[0],
		PlayerTwo: s.scores[1],
	}
}

// Winner returns the player owning more boxes once the game is over, or an empty
// string on a draw or while the game is still running.
func (s *State) Winner() string {
	if !s.IsTerminal() {
		return ""
	}
	switch {
	case s.scores[0] > s.scores[1]:
		return PlayerOne
	case s.scores[1] > s.scores[0]:
		return PlayerTwo
	default:
		return ""
	}
}

func (s *State) copy() *State {
	next := *s
	next.horizontal = append([]bool(nil), s.horizontal...)
	next.vertical = append([]bool(nil), s.vertical...)
	next.owners = append([]int(nil), s.owners...)
	return &next
}

func (s *State) hIndex(row, col int) int {
	return row*(s.size-1) + col
}

func (s *State) vIndex(row, col int) int {
	return row*s.size + col
}

func (s *State) boxIndex(row, col int) int {
	return row*(s.size-1) + col
}

func (s *State) inBounds(line Line) bool {
	if line.Row < 0 || line.Col < 0 {
		return false
	}
	if line.Horizontal {
		return line.Row < s.size && line.Col < s.size-1
	}
	return line.Row < s.size-1 && line.Col < s.size
}

func (s *State) isDrawn(line Line) bool {
	if line.Horizontal {
		return s.horizontal[s.hIndex(line.Row, line.Col)]
	}
	return s.vertical[s.vIndex(line.Row, line.Col)]
}

// adjacentBoxes returns the (row, col) of the one or two boxes bordered by line.
func (s *State) adjacentBoxes(line Line) [][2]int {
	boxes := make([][2]int, 0, 2)
	if line.Horizontal {
		if line.Row > 0 {
			boxes = append(boxes, [2]int{line.Row - 1, line.Col})
		}
		if line.Row < s.size-1 {
			boxes = append(boxes, [2]int{line.Row, line.Col})
		}
	} else {
		if line.Col > 0 {
			boxes = append(boxes, [2]int{line.Row, line.Col - 1})
		}
		if line.Col < s.size-1 {
			boxes = append(boxes, [2]int{line.Row, line.Col})
		}
	}
	return boxes
}

func (s *State) isComplete(row, col int) bool {
	return s.horizontal[s.hIndex(row, col)] &&
		s.horizontal[s.hIndex(row+1, col)] &&
		s.vertical[s.vIndex(row, col)] &&
		s.vertical[s.vIndex(row, col+1)]
}

// String draws the grid with dots, drawn lines and the owner of each box.
func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			b.WriteString("•")
			if c < s.size-1 {
				if s.horizontal[s.hIndex(r, c)] {
					b.WriteString("───")
				} else {
					b.WriteString("   ")
				}
			}
		}
		b.WriteString("\n")
		if r == s.size-1 {
			break
		}
		for c := 0; c < s.size; c++ {
			if s.vertical[s.vIndex(r, c)] {
				b.WriteString("│")
			} else {
				b.WriteString(" ")
			}
			if c < s.size-1 {
				if owner := s.owners[s.boxIndex(r, c)]; owner != unowned {
					fmt.Fprintf(&b, " %s ", players[owner])
				} else {
					b.WriteString("   ")
				}
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "score %s: %d, %s: %d, %s to move", PlayerOne, s.scores[0], PlayerTwo, s.scores[1], s.Player())
	return b.String()
}
