package board

import "fmt"

// Move encodes a move in a single integer:
// bits 0-5:   from square
// bits 6-11:  to square
// bits 12-14: promotion piece type (NoPieceType when not promoting)
// bits 15-16: flag (normal, double pawn push, en passant, castling)
//
// Promotion is orthogonal to the flag so that capturing promotions stay
// ordinary moves carrying a promotion piece.
type Move uint32

// Move flags.
const (
	FlagNormal     uint32 = 0
	FlagDoublePush uint32 = 1
	FlagEnPassant  uint32 = 2
	FlagCastling   uint32 = 3
)

// NoMove is the zero move, used where no valid move exists.
const NoMove Move = 0

// NewMove builds an ordinary move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(NoPieceType)<<12
}

// NewPromotion builds a (possibly capturing) promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo)<<12
}

// NewDoublePush builds a two-square pawn advance.
func NewDoublePush(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(NoPieceType)<<12 | Move(FlagDoublePush)<<15
}

// NewEnPassant builds an en-passant capture.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(NoPieceType)<<12 | Move(FlagEnPassant)<<15
}

// NewCastling builds a castling move, expressed as the king's two-square
// step. The rook relocation is implied.
func NewCastling(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(NoPieceType)<<12 | Move(FlagCastling)<<15
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type, or NoPieceType.
func (m Move) Promotion() PieceType {
	return PieceType((m >> 12) & 7)
}

// Flag returns the move flag.
func (m Move) Flag() uint32 {
	return uint32(m>>15) & 3
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != NoPieceType
}

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePush() bool {
	return m.Flag() == FlagDoublePush
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCastling reports whether the move castles.
func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

// String returns the move in coordinate notation ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("pnbrqk"[m.Promotion()])
	}
	return s
}

// ParseMove parses coordinate notation into an origin/destination pair plus
// an optional promotion piece. The flag is left Normal; callers that need
// the real flag match the result against generated legal moves.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece %q", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}
	return NewMove(from, to), nil
}
