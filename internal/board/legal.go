package board

// Legality filtering: a pseudo-legal move is legal if it does not leave
// the mover's own king attacked. The check is performed by making the move
// on the position itself and unmaking it immediately; the net effect on
// the position is nil, so validation never mutates observable state.

// moveIsSafe reports whether the pseudo-legal move m leaves the mover's
// king unattacked. For castling it additionally requires the king's start
// and transit squares to be safe; the destination is covered by the
// ordinary make/unmake probe.
func (p *Position) moveIsSafe(m Move) bool {
	us := p.SideToMove
	them := us.Other()

	if m.IsCastling() {
		if p.IsAttacked(m.From(), them) {
			return false
		}
		transit := Square((m.From() + m.To()) / 2)
		if p.IsAttacked(transit, them) {
			return false
		}
	}

	undo := p.MakeMove(m)
	safe := !p.IsAttacked(p.KingSquare[us], them)
	p.UnmakeMove(m, undo)
	return safe
}

// GenerateLegalMoves returns every legal move for the side to move. An
// empty result means the game is over: checkmate if the side is in check,
// stalemate otherwise.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.pseudoLegalAll(p.SideToMove)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if p.moveIsSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegalMove reports whether m is legal in the current position. The
// position is left unmodified.
func (p *Position) IsLegalMove(m Move) bool {
	piece := p.Squares[m.From()]
	if piece == NoPiece || piece.Color() != p.SideToMove {
		return false
	}
	for _, candidate := range p.PseudoLegalMoves(m.From()) {
		if candidate == m {
			return p.moveIsSafe(m)
		}
	}
	return false
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, stopping at the first one found.
func (p *Position) HasLegalMoves() bool {
	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece || piece.Color() != p.SideToMove {
			continue
		}
		for _, m := range p.PseudoLegalMoves(sq) {
			if p.moveIsSafe(m) {
				return true
			}
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
