package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Status is the state of play for the side to move.
type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Outcome is the result of Evaluate. Winner is only meaningful for
// Checkmate.
type Outcome struct {
	Status Status
	Winner chess.Colour
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	if o.Status == Checkmate {
		return o.Status.String() + ", " + o.Winner.String() + " wins"
	}
	return o.Status.String()
}

// Evaluate decides whether the side to move has been checkmated or
// stalemated.
func Evaluate(board *chess.Board) Outcome {
	colour := board.ToMove
	if HasLegalMoves(board, colour) {
		return Outcome{Status: InProgress}
	}
	if IsInCheck(board, colour) {
		return Outcome{Status: Checkmate, Winner: colour.Opposite()}
	}
	return Outcome{Status: Stalemate}
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(board *chess.Board) bool {
	return Evaluate(board).Status == Checkmate
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(board *chess.Board) bool {
	return Evaluate(board).Status == Stalemate
}
