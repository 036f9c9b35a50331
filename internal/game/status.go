package game

import "chesscore/internal/board"

// Status is the game-end state, derived from the position after every
// applied move and never stored as independent truth. InProgress is the
// only state in which moves are accepted.
type Status uint8

const (
	InProgress Status = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s != InProgress
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "draw by fifty-move rule"
	case DrawRepetition:
		return "draw by threefold repetition"
	case DrawInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}

// insufficientMaterial reports whether neither side can possibly deliver
// mate: king vs king, a lone minor piece, or bishops all standing on the
// same square color. Any pawn, rook or queen on the board is sufficient.
func insufficientMaterial(pos *board.Position) bool {
	minors := 0
	knights := 0
	bishopColor := -1
	bishopsSameColor := true

	for sq := board.A1; sq <= board.H8; sq++ {
		pc := pos.PieceAt(sq)
		if pc == board.NoPiece {
			continue
		}
		switch pc.Type() {
		case board.King:
		case board.Knight:
			minors++
			knights++
		case board.Bishop:
			minors++
			sqColor := (sq.File() + sq.Rank()) & 1
			if bishopColor == -1 {
				bishopColor = sqColor
			} else if sqColor != bishopColor {
				bishopsSameColor = false
			}
		default:
			return false
		}
	}

	if minors <= 1 {
		return true
	}
	return knights == 0 && bishopsSameColor
}
