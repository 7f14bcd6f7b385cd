package search

import (
	"math/rand"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
)

// Result is a chosen move. Piece belongs to the board that was searched.
type Result struct {
	Piece *chess.Piece
	From  chess.Square
	Move  chess.Move
	Score int   // Minimax score from white's point of view; 0 for Easy
	Depth int   // Plies searched; 0 for Easy
	Nodes int64 // Positions visited
}

// Searcher picks moves for the computer player.
type Searcher struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewSearcher creates a Searcher using cfg's search settings.
func NewSearcher(cfg *config.Config) *Searcher {
	seed := cfg.Search.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Searcher{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// BestMove chooses a move for the side to move. It reports false when that
// side has no legal moves. The board is returned unchanged.
func (s *Searcher) BestMove(board *chess.Board, difficulty config.Difficulty) (Result, bool) {
	moves := engine.AllLegalMoves(board, board.ToMove)
	if len(moves) == 0 {
		return Result{}, false
	}

	var res Result
	if difficulty == config.Easy {
		res = s.easyMove(board, moves)
	} else {
		depth := s.cfg.Search.DepthFor(difficulty)
		candidates := orderMoves(board, moves, s.cfg.Search.MaxCandidates)
		if s.cfg.Search.Workers > 1 && len(candidates) > 1 {
			res = s.searchParallel(board, candidates, depth)
		} else {
			res = s.searchRoot(board, candidates, depth)
		}
	}

	s.cfg.Logf(2, "search: %s %s %s-%s score %d depth %d nodes %d\n",
		difficulty, board.ToMove, res.From, res.Move.To, res.Score, res.Depth, res.Nodes)
	return res, true
}

// easyMove plays a random legal move, except that with probability
// EasyCaptureBias it takes the most valuable capture available.
func (s *Searcher) easyMove(board *chess.Board, moves []engine.PieceMove) Result {
	if s.rng.Float64() < s.cfg.Search.EasyCaptureBias {
		if pm, ok := bestCapture(board, moves); ok {
			return resultOf(pm, 0, 0, 1)
		}
	}
	pm := moves[s.rng.Intn(len(moves))]
	return resultOf(pm, 0, 0, 1)
}

// searchRoot scores each candidate with alpha-beta and keeps the first
// best one.
func (s *Searcher) searchRoot(board *chess.Board, candidates []engine.PieceMove, depth int) Result {
	maximizing := board.ToMove == chess.White
	alpha, beta := -infinity, infinity
	var nodes int64
	best := -1
	bestScore := 0

	for i, pm := range candidates {
		engine.Execute(board, pm.Piece, pm.Move, chess.Queen)
		score := s.minimax(board, depth-1, !maximizing, alpha, beta, &nodes)
		engine.Undo(board)

		if best < 0 || better(score, bestScore, maximizing) {
			best, bestScore = i, score
		}
		if maximizing && score > alpha {
			alpha = score
		} else if !maximizing && score < beta {
			beta = score
		}
	}
	return resultOf(candidates[best], bestScore, depth, nodes)
}

// infinity bounds the alpha-beta window; it exceeds every mate score.
const infinity = 2 * MateScore

// better reports whether score improves on best for the side.
func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// Minimax scores the position to the given depth from white's point of
// view, with no cap on the moves searched. maximizing is true when white
// is to move. The board is restored before returning.
func Minimax(board *chess.Board, depth int, maximizing bool, alpha, beta int) int {
	var nodes int64
	return minimax(board, depth, maximizing, alpha, beta, 0, &nodes)
}

func (s *Searcher) minimax(board *chess.Board, depth int, maximizing bool, alpha, beta int, nodes *int64) int {
	return minimax(board, depth, maximizing, alpha, beta, s.cfg.Search.MaxCandidates, nodes)
}

func minimax(board *chess.Board, depth int, maximizing bool, alpha, beta, limit int, nodes *int64) int {
	*nodes++
	colour := board.ToMove
	if depth <= 0 {
		return Material(board)
	}

	moves := engine.AllLegalMoves(board, colour)
	if len(moves) == 0 {
		if !engine.IsInCheck(board, colour) {
			return 0 // Stalemate
		}
		if colour == chess.White {
			return -MateScore - depth
		}
		return MateScore + depth
	}
	moves = orderMoves(board, moves, limit)

	if maximizing {
		value := -infinity
		for _, pm := range moves {
			engine.Execute(board, pm.Piece, pm.Move, chess.Queen)
			score := minimax(board, depth-1, false, alpha, beta, limit, nodes)
			engine.Undo(board)
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := infinity
	for _, pm := range moves {
		engine.Execute(board, pm.Piece, pm.Move, chess.Queen)
		score := minimax(board, depth-1, true, alpha, beta, limit, nodes)
		engine.Undo(board)
		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			break
		}
	}
	return value
}

func resultOf(pm engine.PieceMove, score, depth int, nodes int64) Result {
	return Result{
		Piece: pm.Piece,
		From:  pm.From(),
		Move:  pm.Move,
		Score: score,
		Depth: depth,
		Nodes: nodes,
	}
}
