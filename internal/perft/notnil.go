package perft

import (
	"golang.org/x/exp/slices"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// NotnilMoves returns the legal moves of a regular 8x8 FEN position in UCI
// form, sorted, as computed by the notnil/chess library.
func NotnilMoves(fen string) ([]string, error) {
	game, err := notnilGame(fen)
	if err != nil {
		return nil, err
	}
	valid := game.ValidMoves()
	moves := make([]string, len(valid))
	for i, m := range valid {
		moves[i] = m.String()
	}
	slices.Sort(moves)
	return moves, nil
}

// NotnilStatus returns the status notnil/chess assigns to a FEN position.
// Only mate and stalemate are reported; the library's draw rules depend on
// game history a FEN does not carry.
func NotnilStatus(fen string) (engine.Status, error) {
	game, err := notnilGame(fen)
	if err != nil {
		return engine.Playing, err
	}
	pos := game.Position()
	switch pos.Status() {
	case notnil.Checkmate:
		if pos.Turn() == notnil.White {
			return engine.BlackWon, nil
		}
		return engine.WhiteWon, nil
	case notnil.Stalemate:
		return engine.Draw, nil
	}
	return engine.Playing, nil
}

func notnilGame(fen string) (*notnil.Game, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "notnil: %v", err)
	}
	return notnil.NewGame(opt), nil
}
