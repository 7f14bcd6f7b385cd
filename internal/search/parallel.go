package search

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/worker"
)

// searchParallel scores the root candidates on a worker pool. Each item
// gets its own copy of the board and a full window, and results are folded
// in candidate order, so the chosen move matches searchRoot.
func (s *Searcher) searchParallel(board *chess.Board, candidates []engine.PieceMove, depth int) Result {
	maximizing := board.ToMove == chess.White
	limit := s.cfg.Search.MaxCandidates

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		var nodes int64
		engine.Execute(item.Board, item.Piece, item.Move, chess.Queen)
		score := minimax(item.Board, depth-1, !maximizing, -infinity, infinity, limit, &nodes)
		engine.Undo(item.Board)
		return worker.ProcessResult{Index: item.Index, Score: score, Nodes: nodes}
	}, worker.WithWorkers(s.cfg.Search.Workers), worker.WithBufferSize(len(candidates)))
	pool.Start()

	for i, pm := range candidates {
		dup := board.Clone()
		pool.Submit(worker.WorkItem{
			Board: dup,
			Piece: dup.At(pm.From()),
			Move:  pm.Move,
			Index: i,
		})
	}
	go pool.Close()

	// A mate delivered by the move itself cannot be beaten. Items already
	// taken by a worker still finish, so every lower-indexed move is scored.
	mateNow := MateScore + depth - 1
	if !maximizing {
		mateNow = -mateNow
	}

	scores := make([]int, len(candidates))
	scored := make([]bool, len(candidates))
	var nodes int64
	for r := range pool.Results() {
		nodes += r.Nodes
		if r.Skipped {
			continue
		}
		scores[r.Index] = r.Score
		scored[r.Index] = true
		if depth > 1 && r.Score == mateNow {
			pool.Stop()
		}
	}

	best := -1
	for i := range scores {
		if scored[i] && (best < 0 || better(scores[i], scores[best], maximizing)) {
			best = i
		}
	}
	s.cfg.Logf(2, "search: %d root moves on %d workers\n", len(candidates), pool.NumWorkers())
	return resultOf(candidates[best], scores[best], depth, nodes)
}
