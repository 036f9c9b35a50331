package board

// IsAttacked reports whether sq is attacked by any piece of color by.
// Pawns are probed with their capture pattern, which differs from their
// push pattern; sliders are probed by walking rays outward from sq until
// the first occupied square.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if sq == NoSquare {
		return false
	}

	// A pawn of color by attacks sq from one rank behind sq (relative to
	// by's direction of travel), on the adjacent files.
	dir := pawnDir(by)
	pawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if from := sq.offset(df, -dir); from != NoSquare && p.Squares[from] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, by)
	for _, d := range knightDeltas {
		if from := sq.offset(d.df, d.dr); from != NoSquare && p.Squares[from] == knight {
			return true
		}
	}

	king := NewPiece(King, by)
	for _, d := range kingDeltas {
		if from := sq.offset(d.df, d.dr); from != NoSquare && p.Squares[from] == king {
			return true
		}
	}

	bishop := NewPiece(Bishop, by)
	rook := NewPiece(Rook, by)
	queen := NewPiece(Queen, by)

	for _, d := range bishopRays {
		for from := sq.offset(d.df, d.dr); from != NoSquare; from = from.offset(d.df, d.dr) {
			target := p.Squares[from]
			if target == NoPiece {
				continue
			}
			if target == bishop || target == queen {
				return true
			}
			break
		}
	}
	for _, d := range rookRays {
		for from := sq.offset(d.df, d.dr); from != NoSquare; from = from.offset(d.df, d.dr) {
			target := p.Squares[from]
			if target == NoPiece {
				continue
			}
			if target == rook || target == queen {
				return true
			}
			break
		}
	}

	return false
}
