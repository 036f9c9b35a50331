package board

import "testing"

// perft counts leaf nodes of the legal move tree at the given depth, the
// standard way to verify generation, make/unmake and the special-move
// rules all at once.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		undo := p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove(m, undo)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tc := range tests {
		if got := perft(pos, tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// Kiwipete exercises castling, en passant, promotions and pins heavily.
func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, tc := range tests {
		if got := perft(pos, tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// A sparse rook endgame with en-passant and promotion edge cases.
func TestPerftEndgame(t *testing.T) {
	pos, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}
	for _, tc := range tests {
		if got := perft(pos, tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// A tactical middlegame with an underpromotion-heavy move tree.
func TestPerftPromotions(t *testing.T) {
	pos, err := ParseFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 44},
		{2, 1486},
		{3, 62379},
	}
	for _, tc := range tests {
		if got := perft(pos, tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}
