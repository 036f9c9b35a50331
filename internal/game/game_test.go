package game

import (
	"errors"
	"testing"

	"chesscore/internal/board"
	"chesscore/internal/testutil"
)

// submit plays a move given in coordinate notation and fails the test if
// it is rejected.
func submit(t *testing.T, g *Game, s string) MoveOutcome {
	t.Helper()
	m, err := board.ParseMove(s)
	testutil.AssertNoError(t, err, "parse %q", s)
	outcome := g.SubmitMove(MoveRequest{From: m.From(), To: m.To(), Promotion: m.Promotion()})
	if !outcome.Applied {
		t.Fatalf("move %s rejected: %v", s, outcome.Reason)
	}
	return outcome
}

func TestOpeningMoveScenario(t *testing.T) {
	g := New()
	outcome := submit(t, g, "e2e4")

	testutil.AssertEqual(t, outcome.Status, InProgress)
	testutil.AssertEqual(t, outcome.Captured, board.NoPiece)
	testutil.AssertTrue(t, outcome.Move.IsDoublePush(), "flag inferred from legal move")
	testutil.AssertEqual(t, g.FEN(),
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestFoolsMate(t *testing.T) {
	g := New()
	submit(t, g, "f2f3")
	submit(t, g, "e7e5")
	submit(t, g, "g2g4")
	outcome := submit(t, g, "d8h4")

	testutil.AssertEqual(t, outcome.Status, Checkmate)
	testutil.AssertEqual(t, outcome.Winner, board.Black)
	testutil.AssertTrue(t, g.Status().Terminal())

	winner, ok := g.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, board.Black)
}

func TestMovesRejectedAfterGameEnd(t *testing.T) {
	g := New()
	submit(t, g, "f2f3")
	submit(t, g, "e7e5")
	submit(t, g, "g2g4")
	submit(t, g, "d8h4")

	fen := g.FEN()
	outcome := g.SubmitMove(MoveRequest{From: board.E2, To: board.E4})
	testutil.AssertFalse(t, outcome.Applied)
	testutil.AssertTrue(t, errors.Is(outcome.Reason, ErrGameOver))
	testutil.AssertEqual(t, g.FEN(), fen, "board untouched")
	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
}

func TestIllegalMoveLeavesBoardUnmodified(t *testing.T) {
	g := New()
	fen := g.FEN()

	for _, s := range []string{"e2e5", "e7e5", "g1g3", "e1g1"} {
		m, err := board.ParseMove(s)
		testutil.AssertNoError(t, err)
		outcome := g.SubmitMove(MoveRequest{From: m.From(), To: m.To(), Promotion: m.Promotion()})
		testutil.AssertFalse(t, outcome.Applied, "move %s", s)
		testutil.AssertTrue(t, errors.Is(outcome.Reason, ErrIllegalMove))
	}
	testutil.AssertEqual(t, g.FEN(), fen)
}

func TestCastlingRightsNotPosition(t *testing.T) {
	g, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	// The king steps out and returns to its original square. The rights
	// are gone for good, so castling must now be rejected.
	submit(t, g, "e1e2")
	submit(t, g, "h8h7")
	submit(t, g, "e2e1")
	submit(t, g, "h7h8")

	outcome := g.SubmitMove(MoveRequest{From: board.E1, To: board.G1})
	testutil.AssertFalse(t, outcome.Applied)
	testutil.AssertTrue(t, errors.Is(outcome.Reason, ErrIllegalMove))
}

func TestEnPassantCapture(t *testing.T) {
	g := New()
	submit(t, g, "e2e4")
	submit(t, g, "a7a6")
	submit(t, g, "e4e5")
	submit(t, g, "d7d5")
	outcome := submit(t, g, "e5d6")

	testutil.AssertTrue(t, outcome.Move.IsEnPassant())
	testutil.AssertEqual(t, outcome.Captured, board.BlackPawn)

	pos := g.Position()
	testutil.AssertEqual(t, pos.PieceAt(board.D6), board.WhitePawn)
	testutil.AssertEqual(t, pos.PieceAt(board.D5), board.NoPiece, "bypassed pawn removed")
}

func TestPromotionRequiresExplicitPiece(t *testing.T) {
	g, err := NewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	// No promotion piece given: no legal move matches.
	outcome := g.SubmitMove(MoveRequest{From: board.A7, To: board.A8})
	testutil.AssertFalse(t, outcome.Applied)

	outcome = g.SubmitMove(MoveRequest{From: board.A7, To: board.A8, Promotion: board.Knight})
	testutil.AssertTrue(t, outcome.Applied)
	testutil.AssertEqual(t, g.Position().PieceAt(board.A8), board.WhiteKnight)
}

func TestFiftyMoveDraw(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/4K2R w - - 99 70")
	testutil.AssertNoError(t, err)

	outcome := submit(t, g, "h1h2")
	testutil.AssertEqual(t, outcome.Status, DrawFiftyMove)
	testutil.AssertTrue(t, g.Status().Terminal())
}

func TestThreefoldRepetitionDraw(t *testing.T) {
	g := New()

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range shuffle {
		outcome := submit(t, g, s)
		testutil.AssertEqual(t, outcome.Status, InProgress)
	}
	// Second shuffle brings the starting position up for the third time.
	for i, s := range shuffle {
		outcome := submit(t, g, s)
		if i < len(shuffle)-1 {
			testutil.AssertEqual(t, outcome.Status, InProgress)
		} else {
			testutil.AssertEqual(t, outcome.Status, DrawRepetition)
		}
	}
}

func TestInsufficientMaterialDraw(t *testing.T) {
	// Knight takes the checking queen, leaving king and knight vs king.
	g, err := NewFromFEN("4k3/8/8/8/8/6q1/8/4K2N w - - 0 1")
	testutil.AssertNoError(t, err)

	outcome := submit(t, g, "h1g3")
	testutil.AssertEqual(t, outcome.Captured, board.BlackQueen)
	testutil.AssertEqual(t, outcome.Status, DrawInsufficientMaterial)
}

func TestUndoMove(t *testing.T) {
	g := New()
	testutil.AssertTrue(t, errors.Is(g.UndoMove(), ErrNothingToUndo))

	submit(t, g, "e2e4")
	testutil.AssertNoError(t, g.UndoMove())
	testutil.AssertEqual(t, g.FEN(), board.StartFEN)
	testutil.AssertEqual(t, g.Status(), InProgress)
	testutil.AssertEqual(t, len(g.Moves()), 0)

	// Undoing out of checkmate resumes the game.
	submit(t, g, "f2f3")
	submit(t, g, "e7e5")
	submit(t, g, "g2g4")
	submit(t, g, "d8h4")
	testutil.AssertEqual(t, g.Status(), Checkmate)
	testutil.AssertNoError(t, g.UndoMove())
	testutil.AssertEqual(t, g.Status(), InProgress)
}

func TestUndoUnwindsRepetitionHistory(t *testing.T) {
	g := New()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range shuffle {
		submit(t, g, s)
	}
	for _, s := range shuffle {
		submit(t, g, s)
	}
	testutil.AssertEqual(t, g.Status(), DrawRepetition)

	// Undo past the third occurrence, then replay a different move: the
	// draw must not stick.
	testutil.AssertNoError(t, g.UndoMove())
	testutil.AssertEqual(t, g.Status(), InProgress)
	outcome := submit(t, g, "b8c6")
	testutil.AssertEqual(t, outcome.Status, InProgress)
}

func TestOneKingEachAfterPlay(t *testing.T) {
	g := New()
	for _, s := range []string{"e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5e5", "f1e2", "e5g5"} {
		submit(t, g, s)
	}
	testutil.AssertNoError(t, g.Position().Validate())
}

func TestNewFromFENRejectsBadPositions(t *testing.T) {
	_, err := NewFromFEN("not a fen")
	testutil.AssertError(t, err)

	// Structurally broken: two white kings.
	_, err = NewFromFEN("4k3/8/8/8/8/8/8/3KK3 w - - 0 1")
	testutil.AssertError(t, err)
}

func TestReplay(t *testing.T) {
	g, err := Replay(board.StartFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), Checkmate)

	_, err = Replay(board.StartFEN, []string{"e2e4", "e2e4"})
	testutil.AssertError(t, err, "illegal continuation must fail replay")

	_, err = Replay(board.StartFEN, []string{"zzzz"})
	testutil.AssertError(t, err, "unparseable move must fail replay")
}
