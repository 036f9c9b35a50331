// Package board implements the chess rules core: position representation,
// move generation, legality checking, move application and FEN encoding.
package board

import "fmt"

// Square identifies a board square (0-63) using little-endian rank-file
// mapping: A1=0, H1=7, A8=56, H8=63. Off-board is always NoSquare, never an
// out-of-range value.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare builds a square from 0-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file of the square (0=a .. 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank of the square (0=rank 1 .. 7=rank 8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic name of the square ("e4"), or "-" for
// NoSquare. The "-" form matches the FEN en-passant field.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(file, rank), nil
}

// offset returns the square displaced by (df, dr) files/ranks, or NoSquare
// if the result leaves the board. Mailbox move generation is built on this,
// so wraparound can never produce a bogus on-board square.
func (sq Square) offset(df, dr int) Square {
	file := sq.File() + df
	rank := sq.Rank() + dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return NewSquare(file, rank)
}
