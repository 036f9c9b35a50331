package board

import "fmt"

// CastlingRights is a bitmask of the four castling permissions. A right is
// forfeited permanently when the king or the matching rook moves; it never
// comes back even if the piece returns to its original square.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// CanCastle reports whether the given side still holds the given right.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	var bit CastlingRights
	switch {
	case c == White && kingSide:
		bit = WhiteKingSideCastle
	case c == White:
		bit = WhiteQueenSideCastle
	case kingSide:
		bit = BlackKingSideCastle
	default:
		bit = BlackQueenSideCastle
	}
	return cr&bit != 0
}

// String returns the FEN castling field ("KQkq" subset or "-").
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// Position is the complete state of a game position: an 8x8 mailbox grid
// plus the side to move, castling rights, en-passant target and move
// counters. It is the single source of truth; everything else in the
// package derives from it.
type Position struct {
	// Squares maps each square to its occupant, NoPiece when empty.
	Squares [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // capture target square, NoSquare when none
	HalfMoveClock  int    // plies since the last pawn move or capture
	FullMoveNumber int    // starts at 1, increments after Black moves

	// KingSquare caches each king's location for check detection.
	KingSquare [2]Square

	// Hash is the Zobrist signature of the position, covering piece
	// placement, side to move, castling rights and the en-passant file.
	// Maintained incrementally by MakeMove/UnmakeMove.
	Hash uint64
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Squares[sq]
}

// IsEmpty reports whether sq is unoccupied.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Squares[sq] == NoPiece
}

// setPiece places piece on sq, updating the hash and king cache. The square
// must be empty.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	p.Squares[sq] = piece
	p.Hash ^= zobristPiece[piece.Color()][piece.Type()][sq]
	if piece.Type() == King {
		p.KingSquare[piece.Color()] = sq
	}
}

// removePiece clears sq and returns the removed piece.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.Squares[sq]
	if piece == NoPiece {
		return NoPiece
	}
	p.Squares[sq] = NoPiece
	p.Hash ^= zobristPiece[piece.Color()][piece.Type()][sq]
	return piece
}

// movePiece relocates the piece on from to the empty square to.
func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	if piece != NoPiece {
		p.setPiece(piece, to)
	}
}

// findKings refreshes the king cache from the grid.
func (p *Position) findKings() {
	p.KingSquare[White] = NoSquare
	p.KingSquare[Black] = NoSquare
	for sq := A1; sq <= H8; sq++ {
		if pc := p.Squares[sq]; pc.Type() == King {
			p.KingSquare[pc.Color()] = sq
		}
	}
}

// Validate checks the structural invariants of the position: exactly one
// king per side and no pawns on the back ranks.
func (p *Position) Validate() error {
	var kings [2]int
	for sq := A1; sq <= H8; sq++ {
		pc := p.Squares[sq]
		if pc == NoPiece {
			continue
		}
		if pc.Type() == King {
			kings[pc.Color()]++
		}
		if pc.Type() == Pawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return fmt.Errorf("pawn on back rank %s", sq)
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("white has %d kings, want 1", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black has %d kings, want 1", kings[Black])
	}
	return nil
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	us := p.SideToMove
	return p.IsAttacked(p.KingSquare[us], us.Other())
}

// String returns a board diagram with the game-state fields below it.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.Squares[NewSquare(file, rank)]
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	return s
}
