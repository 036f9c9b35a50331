package board

// Zobrist keys for position signatures. The signature covers piece
// placement, side to move, castling rights and the en-passant file, so two
// positions compare equal exactly when repetition detection says they
// should. A fixed seed keeps signatures reproducible across runs.
var (
	zobristPiece      [2][6][64]uint64
	zobristEnPassant  [8]uint64
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// xorshift64* generator; good enough spread for hashing keys.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x70A1C3D5E7F90B2D}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}
	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// ComputeHash derives the Zobrist signature from scratch. MakeMove keeps
// the signature current incrementally; this is the ground truth used after
// FEN parsing and in tests.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for sq := A1; sq <= H8; sq++ {
		if pc := p.Squares[sq]; pc != NoPiece {
			hash ^= zobristPiece[pc.Color()][pc.Type()][sq]
		}
	}
	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}
	hash ^= zobristCastling[p.CastlingRights]
	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	return hash
}
