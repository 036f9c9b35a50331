package board

// Per-piece movement rules. Everything here is pseudo-legal: blocked
// squares and capture rules are honored, but whether the mover's own king
// ends up attacked is the legality filter's concern. Castling is the one
// partial case: rights, rook presence and empty intervening squares are
// checked here, attack-safety of the king's path is not, so the rules
// layer never re-enters check detection.

type delta struct {
	df, dr int
}

var (
	knightDeltas = [8]delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas   = [8]delta{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	bishopRays   = [4]delta{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookRays     = [4]delta{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// moveGenFuncs dispatches pseudo-legal generation over the closed set of
// piece types.
var moveGenFuncs = [6]func(p *Position, sq Square, us Color, moves []Move) []Move{
	genPawnMoves,
	genKnightMoves,
	genBishopMoves,
	genRookMoves,
	genQueenMoves,
	genKingMoves,
}

// PseudoLegalMoves returns every move the piece on sq may make by its
// movement pattern alone. The square must hold a piece.
func (p *Position) PseudoLegalMoves(sq Square) []Move {
	piece := p.Squares[sq]
	if piece == NoPiece {
		return nil
	}
	return moveGenFuncs[piece.Type()](p, sq, piece.Color(), nil)
}

// pseudoLegalAll generates pseudo-legal moves for every piece of us.
func (p *Position) pseudoLegalAll(us Color) []Move {
	moves := make([]Move, 0, 48)
	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		moves = moveGenFuncs[piece.Type()](p, sq, us, moves)
	}
	return moves
}

// appendLeaperMoves adds moves to each reachable empty or enemy square.
func appendLeaperMoves(p *Position, sq Square, us Color, deltas *[8]delta, moves []Move) []Move {
	for _, d := range deltas {
		to := sq.offset(d.df, d.dr)
		if to == NoSquare {
			continue
		}
		target := p.Squares[to]
		if target == NoPiece || target.Color() != us {
			moves = append(moves, NewMove(sq, to))
		}
	}
	return moves
}

// appendSliderMoves walks each ray until blocked, capturing the blocker if
// it is an enemy piece.
func appendSliderMoves(p *Position, sq Square, us Color, rays *[4]delta, moves []Move) []Move {
	for _, d := range rays {
		for to := sq.offset(d.df, d.dr); to != NoSquare; to = to.offset(d.df, d.dr) {
			target := p.Squares[to]
			if target == NoPiece {
				moves = append(moves, NewMove(sq, to))
				continue
			}
			if target.Color() != us {
				moves = append(moves, NewMove(sq, to))
			}
			break
		}
	}
	return moves
}

func genKnightMoves(p *Position, sq Square, us Color, moves []Move) []Move {
	return appendLeaperMoves(p, sq, us, &knightDeltas, moves)
}

func genBishopMoves(p *Position, sq Square, us Color, moves []Move) []Move {
	return appendSliderMoves(p, sq, us, &bishopRays, moves)
}

func genRookMoves(p *Position, sq Square, us Color, moves []Move) []Move {
	return appendSliderMoves(p, sq, us, &rookRays, moves)
}

func genQueenMoves(p *Position, sq Square, us Color, moves []Move) []Move {
	moves = appendSliderMoves(p, sq, us, &bishopRays, moves)
	return appendSliderMoves(p, sq, us, &rookRays, moves)
}

// pawnDir returns the forward rank direction for a color.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// appendPawnMove expands a pawn arrival on the final rank into the four
// promotion choices, and passes other arrivals through unchanged.
func appendPawnMove(from, to Square, us Color, moves []Move) []Move {
	promoRank := 7
	if us == Black {
		promoRank = 0
	}
	if to.Rank() == promoRank {
		for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			moves = append(moves, NewPromotion(from, to, pt))
		}
		return moves
	}
	return append(moves, NewMove(from, to))
}

func genPawnMoves(p *Position, sq Square, us Color, moves []Move) []Move {
	dir := pawnDir(us)
	startRank := 1
	if us == Black {
		startRank = 6
	}

	// Pushes: one square if empty, two from the start rank if both the
	// intermediate and target squares are empty.
	if one := sq.offset(0, dir); one != NoSquare && p.Squares[one] == NoPiece {
		moves = appendPawnMove(sq, one, us, moves)
		if sq.Rank() == startRank {
			if two := sq.offset(0, 2*dir); two != NoSquare && p.Squares[two] == NoPiece {
				moves = append(moves, NewDoublePush(sq, two))
			}
		}
	}

	// Captures use the diagonal pattern, distinct from the push pattern.
	for _, df := range [2]int{-1, 1} {
		to := sq.offset(df, dir)
		if to == NoSquare {
			continue
		}
		if target := p.Squares[to]; target != NoPiece && target.Color() != us {
			moves = appendPawnMove(sq, to, us, moves)
		} else if to == p.EnPassant && p.EnPassant != NoSquare {
			moves = append(moves, NewEnPassant(sq, to))
		}
	}
	return moves
}

func genKingMoves(p *Position, sq Square, us Color, moves []Move) []Move {
	moves = appendLeaperMoves(p, sq, us, &kingDeltas, moves)

	// Castling: rights flag still held, rook on its home square, and the
	// squares between king and rook empty. Attack checks on the king's
	// path are applied by the legality filter.
	homeRank := 0
	if us == Black {
		homeRank = 7
	}
	if sq != NewSquare(4, homeRank) {
		return moves
	}
	rook := NewPiece(Rook, us)
	if p.CastlingRights.CanCastle(us, true) &&
		p.Squares[NewSquare(7, homeRank)] == rook &&
		p.Squares[NewSquare(5, homeRank)] == NoPiece &&
		p.Squares[NewSquare(6, homeRank)] == NoPiece {
		moves = append(moves, NewCastling(sq, NewSquare(6, homeRank)))
	}
	if p.CastlingRights.CanCastle(us, false) &&
		p.Squares[NewSquare(0, homeRank)] == rook &&
		p.Squares[NewSquare(1, homeRank)] == NoPiece &&
		p.Squares[NewSquare(2, homeRank)] == NoPiece &&
		p.Squares[NewSquare(3, homeRank)] == NoPiece {
		moves = append(moves, NewCastling(sq, NewSquare(2, homeRank)))
	}
	return moves
}
