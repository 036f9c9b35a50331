package board

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
)

// Cross-validates legal move generation against dragontoothmg, an
// independent perft-verified generator. Both sides emit coordinate
// notation, so sorted move lists must match exactly.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/8/8/8/8/5q2/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 2",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		var got []string
		for _, m := range pos.GenerateLegalMoves() {
			got = append(got, m.String())
		}
		sort.Strings(got)

		ref := dragontoothmg.ParseFen(fen)
		var want []string
		for _, m := range ref.GenerateLegalMoves() {
			want = append(want, m.String())
		}
		sort.Strings(want)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("legal moves for %q (-reference +got):\n%s", fen, diff)
		}
	}
}
