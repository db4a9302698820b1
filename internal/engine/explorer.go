package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// SquareExplorer visits every playable square in plain order (a1, b1, ...,
// then the next rank). The zero value is not usable; get one from
// Board.Squares.
type SquareExplorer struct {
	board  *Board
	square int
	index  int
}

// Squares returns an explorer positioned before the first square.
func (b *Board) Squares() SquareExplorer {
	return SquareExplorer{board: b, square: -1, index: NoSquare}
}

// Next advances to the next square and reports whether there was one.
func (e *SquareExplorer) Next() bool {
	e.square++
	if e.square >= e.board.layout.Dimension().Squares() {
		e.index = NoSquare
		return false
	}
	e.index = e.board.layout.FromSquare(e.square)
	return true
}

// Index returns the layout index of the current square.
func (e *SquareExplorer) Index() int { return e.index }

// Piece returns the piece on the current square.
func (e *SquareExplorer) Piece() chess.Piece { return e.board.squares[e.index] }

// DirectionExplorer walks a ray away from a start square, one step at a time,
// until it leaves the board.
type DirectionExplorer struct {
	board     *Board
	direction chess.Direction
	index     int
	distance  int
}

// Ray returns an explorer positioned on from, heading along d.
func (b *Board) Ray(from int, d chess.Direction) DirectionExplorer {
	return DirectionExplorer{board: b, direction: d, index: from}
}

// Next steps once along the ray. It reports false, and leaves the explorer
// exhausted, when the step leaves the board.
func (e *DirectionExplorer) Next() bool {
	if e.index == NoSquare {
		return false
	}
	next := e.board.layout.Step(e.index, e.direction)
	if e.board.at(next) == chess.Off {
		e.index = NoSquare
		return false
	}
	e.index = next
	e.distance++
	return true
}

// Index returns the current square.
func (e *DirectionExplorer) Index() int { return e.index }

// Piece returns the piece on the current square.
func (e *DirectionExplorer) Piece() chess.Piece { return e.board.at(e.index) }

// Distance returns the number of steps taken from the start square.
func (e *DirectionExplorer) Distance() int { return e.distance }

// Direction returns the direction being walked.
func (e *DirectionExplorer) Direction() chess.Direction { return e.direction }

// firstPiece walks from along d and returns the first occupied square and its
// piece. It returns NoSquare and Off when the ray reaches the edge.
func (b *Board) firstPiece(from int, d chess.Direction) (int, chess.Piece) {
	ray := b.Ray(from, d)
	for ray.Next() {
		if p := ray.Piece(); p != chess.Empty {
			return ray.Index(), p
		}
	}
	return NoSquare, chess.Off
}
