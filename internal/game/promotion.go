package game

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Prompter asks a human which piece a pawn promotes to. Answers are parsed
// with chess.ParsePromotion; an error from the prompter abandons the move.
type Prompter interface {
	ChoosePromotion(colour chess.Colour, at chess.Square) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(colour chess.Colour, at chess.Square) (string, error)

// ChoosePromotion calls f.
func (f PrompterFunc) ChoosePromotion(colour chess.Colour, at chess.Square) (string, error) {
	return f(colour, at)
}

// askPromotion prompts until the answer names a promotion piece.
func (s *Session) askPromotion(colour chess.Colour, at chess.Square) (chess.Kind, error) {
	if s.prompter == nil {
		return chess.Queen, nil
	}
	for attempt := 1; ; attempt++ {
		answer, err := s.prompter.ChoosePromotion(colour, at)
		if err != nil {
			return chess.NoKind, errors.Wrapf(err, "promotion on %s", at)
		}
		kind, err := chess.ParsePromotion(answer)
		if err == nil {
			return kind, nil
		}
		s.cfg.Logf(1, "%v (attempt %d)\n", err, attempt)
	}
}
