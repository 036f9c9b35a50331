package board

// Undo records everything MakeMove changed that cannot be recomputed:
// the captured piece and its square (which differs from the destination
// for en passant), and the prior rights, en-passant target, clock and
// signature. UnmakeMove with this record restores the exact prior state.
type Undo struct {
	Captured       Piece
	CapturedSquare Square
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Hash           uint64
}

// castleMask[sq] holds the castling rights that survive a move touching sq.
// Rights are cleared whenever the king or an unmoved rook leaves its home
// square, and when a rook is captured on one; masking both endpoints of
// every move covers all of those cases at once.
var castleMask [64]CastlingRights

func init() {
	for sq := A1; sq <= H8; sq++ {
		castleMask[sq] = AllCastling
	}
	castleMask[A1] &^= WhiteQueenSideCastle
	castleMask[E1] &^= WhiteKingSideCastle | WhiteQueenSideCastle
	castleMask[H1] &^= WhiteKingSideCastle
	castleMask[A8] &^= BlackQueenSideCastle
	castleMask[E8] &^= BlackKingSideCastle | BlackQueenSideCastle
	castleMask[H8] &^= BlackKingSideCastle
}

// MakeMove applies m to the position and returns the record needed to undo
// it. The move must be pseudo-legal for the side to move; legality is the
// caller's responsibility.
func (p *Position) MakeMove(m Move) Undo {
	from, to := m.From(), m.To()
	us := p.SideToMove
	moving := p.Squares[from]

	undo := Undo{
		Captured:       NoPiece,
		CapturedSquare: NoSquare,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		Hash:           p.Hash,
	}

	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.Hash ^= zobristCastling[p.CastlingRights]

	if m.IsEnPassant() {
		// The captured pawn sits beside the destination, on the rank the
		// capturing pawn came from.
		capSq := to.offset(0, -pawnDir(us))
		undo.Captured = p.removePiece(capSq)
		undo.CapturedSquare = capSq
	} else if p.Squares[to] != NoPiece {
		undo.Captured = p.removePiece(to)
		undo.CapturedSquare = to
	}

	p.movePiece(from, to)

	if m.IsPromotion() {
		p.removePiece(to)
		p.setPiece(NewPiece(m.Promotion(), us), to)
	}

	if m.IsCastling() {
		rank := to.Rank()
		if to.File() == 6 {
			p.movePiece(NewSquare(7, rank), NewSquare(5, rank))
		} else {
			p.movePiece(NewSquare(0, rank), NewSquare(3, rank))
		}
	}

	p.CastlingRights &= castleMask[from] & castleMask[to]
	p.Hash ^= zobristCastling[p.CastlingRights]

	p.EnPassant = NoSquare
	if m.IsDoublePush() {
		p.EnPassant = from.offset(0, pawnDir(us))
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	if moving.Type() == Pawn || undo.Captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = us.Other()
	p.Hash ^= zobristSideToMove

	return undo
}

// UnmakeMove reverts m using the record MakeMove returned for it. Moves
// must be unmade in reverse order of making.
func (p *Position) UnmakeMove(m Move, undo Undo) {
	from, to := m.From(), m.To()
	us := p.SideToMove.Other() // the side that made the move

	if m.IsPromotion() {
		p.removePiece(to)
		p.setPiece(NewPiece(Pawn, us), from)
	} else {
		p.movePiece(to, from)
	}

	if m.IsCastling() {
		rank := to.Rank()
		if to.File() == 6 {
			p.movePiece(NewSquare(5, rank), NewSquare(7, rank))
		} else {
			p.movePiece(NewSquare(3, rank), NewSquare(0, rank))
		}
	}

	if undo.Captured != NoPiece {
		p.setPiece(undo.Captured, undo.CapturedSquare)
	}

	p.SideToMove = us
	if us == Black {
		p.FullMoveNumber--
	}
	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.Hash = undo.Hash
}
