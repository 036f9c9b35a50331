package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError reports a malformed FEN string. It names the offending field
// so callers can surface a precise message; it is always a reportable
// value, never a panic.
type ParseError struct {
	Field string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid FEN %s: %s", e.Field, e.Msg)
}

// ParseFEN decodes the six-field FEN grammar into a Position. On failure it
// returns a *ParseError and no position.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &ParseError{"field count", fmt.Sprintf("need 6 fields, got %d", len(parts))}
	}

	pos := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	for sq := A1; sq <= H8; sq++ {
		pos.Squares[sq] = NoPiece
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, &ParseError{"side to move", fmt.Sprintf("want w or b, got %q", parts[1])}
	}

	if err := parseCastling(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, &ParseError{"en passant", fmt.Sprintf("bad square %q", parts[3])}
		}
		pos.EnPassant = sq
	}

	hmc, err := strconv.Atoi(parts[4])
	if err != nil || hmc < 0 {
		return nil, &ParseError{"half-move clock", fmt.Sprintf("want non-negative integer, got %q", parts[4])}
	}
	pos.HalfMoveClock = hmc

	fmn, err := strconv.Atoi(parts[5])
	if err != nil || fmn < 1 {
		return nil, &ParseError{"full-move number", fmt.Sprintf("want positive integer, got %q", parts[5])}
	}
	pos.FullMoveNumber = fmn

	pos.findKings()
	pos.Hash = pos.ComputeHash()

	return pos, nil
}

// parsePlacement fills the grid from the piece placement field, rank 8
// first, files a to h.
func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{"placement", fmt.Sprintf("need 8 ranks, got %d", len(ranks))}
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return &ParseError{"placement", fmt.Sprintf("rank %d overflows 8 squares", rank+1)}
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(c)
			if piece == NoPiece {
				return &ParseError{"placement", fmt.Sprintf("bad piece letter %q", c)}
			}
			pos.Squares[NewSquare(file, rank)] = piece
			file++
		}
		if file != 8 {
			return &ParseError{"placement", fmt.Sprintf("rank %d sums to %d squares, want 8", rank+1, file)}
		}
	}
	return nil
}

func parseCastling(pos *Position, castling string) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}
	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			pos.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.CastlingRights |= BlackKingSideCastle
		case 'q':
			pos.CastlingRights |= BlackQueenSideCastle
		default:
			return &ParseError{"castling", fmt.Sprintf("bad letter %q", castling[i])}
		}
	}
	return nil
}

// ToFEN encodes the position in canonical six-field FEN.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Squares[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
