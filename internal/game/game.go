// Package game orchestrates a single chess game: turn order, legality,
// draw tracking and game-end status. It is the sole entry point external
// collaborators use; they query state and submit move requests, never
// touching the position directly.
package game

import (
	"fmt"

	"chesscore/internal/board"
)

// MoveRequest is a candidate move submitted by an outer layer: origin,
// destination and an optional promotion piece. Pawn (the zero value),
// King and NoPieceType all count as "no promotion". The request carries
// no move flag; the controller infers it by matching the request against
// the generated legal moves, so callers cannot smuggle in a bogus
// en-passant or castling claim.
type MoveRequest struct {
	From      board.Square
	To        board.Square
	Promotion board.PieceType
}

// MoveOutcome is the controller's answer to a submitted request. Either
// the move was applied (with the matched move, any captured piece, and the
// freshly derived status) or it was rejected with a reason and the game
// left untouched.
type MoveOutcome struct {
	Applied  bool
	Move     board.Move
	Captured board.Piece
	Status   Status
	Winner   board.Color // meaningful only when Status == Checkmate
	Reason   error       // set only when !Applied
}

// Game owns the position and everything derived from it: the applied move
// list, the undo stack, the repetition table and the current status.
// Legality checking, move application and status derivation happen as one
// synchronous unit inside SubmitMove; callers never observe a half-updated
// game. Game is not safe for concurrent use.
type Game struct {
	pos        *board.Position
	startFEN   string
	moves      []board.Move
	undos      []board.Undo
	repetition map[uint64]int
	status     Status
	winner     board.Color
}

// New starts a game from the standard starting position.
func New() *Game {
	g, _ := NewFromFEN(board.StartFEN)
	return g
}

// NewFromFEN starts a game from an arbitrary position. The FEN must decode
// cleanly and satisfy the structural invariants (one king per side, no
// back-rank pawns).
func NewFromFEN(fen string) (*Game, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}
	g := &Game{
		pos:        pos,
		startFEN:   fen,
		repetition: map[uint64]int{pos.Hash: 1},
	}
	g.deriveStatus()
	return g, nil
}

// SubmitMove matches the request against the legal moves and, if one
// matches, applies it, records the new position signature and derives the
// resulting status. A rejection leaves the board unmodified.
func (g *Game) SubmitMove(req MoveRequest) MoveOutcome {
	if g.status.Terminal() {
		return MoveOutcome{Status: g.status, Winner: g.winner, Reason: ErrGameOver}
	}

	promo := req.Promotion
	if promo == board.Pawn || promo >= board.King {
		promo = board.NoPieceType
	}

	var matched board.Move
	for _, m := range g.pos.GenerateLegalMoves() {
		if m.From() == req.From && m.To() == req.To && m.Promotion() == promo {
			matched = m
			break
		}
	}
	if matched == board.NoMove {
		return MoveOutcome{Status: g.status, Reason: ErrIllegalMove}
	}

	undo := g.pos.MakeMove(matched)
	g.moves = append(g.moves, matched)
	g.undos = append(g.undos, undo)
	g.repetition[g.pos.Hash]++
	g.deriveStatus()

	return MoveOutcome{
		Applied:  true,
		Move:     matched,
		Captured: undo.Captured,
		Status:   g.status,
		Winner:   g.winner,
	}
}

// UndoMove reverts the last applied move, unwinding the repetition table
// and re-deriving the status. Undoing out of a terminal state is allowed;
// the game resumes.
func (g *Game) UndoMove() error {
	n := len(g.moves)
	if n == 0 {
		return ErrNothingToUndo
	}

	if g.repetition[g.pos.Hash] <= 1 {
		delete(g.repetition, g.pos.Hash)
	} else {
		g.repetition[g.pos.Hash]--
	}
	g.pos.UnmakeMove(g.moves[n-1], g.undos[n-1])
	g.moves = g.moves[:n-1]
	g.undos = g.undos[:n-1]
	g.deriveStatus()
	return nil
}

// deriveStatus recomputes the game-end status from the position, the
// repetition table and the half-move clock. Checkmate and stalemate take
// precedence over the fifty-move rule when both trigger at once.
func (g *Game) deriveStatus() {
	if !g.pos.HasLegalMoves() {
		if g.pos.InCheck() {
			g.status = Checkmate
			g.winner = g.pos.SideToMove.Other()
		} else {
			g.status = Stalemate
		}
		return
	}
	switch {
	case g.repetition[g.pos.Hash] >= 3:
		g.status = DrawRepetition
	case g.pos.HalfMoveClock >= 100:
		g.status = DrawFiftyMove
	case insufficientMaterial(g.pos):
		g.status = DrawInsufficientMaterial
	default:
		g.status = InProgress
	}
}

// Status returns the current game-end status.
func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning color when the game ended in checkmate.
func (g *Game) Winner() (board.Color, bool) {
	if g.status == Checkmate {
		return g.winner, true
	}
	return board.NoColor, false
}

// Position returns a copy of the current position for presentation. The
// game keeps exclusive ownership of the live board.
func (g *Game) Position() *board.Position {
	return g.pos.Copy()
}

// LegalMoves returns the legal moves for the side to move, or nil once the
// game has ended.
func (g *Game) LegalMoves() []board.Move {
	if g.status.Terminal() {
		return nil
	}
	return g.pos.GenerateLegalMoves()
}

// FEN returns the current position in canonical FEN.
func (g *Game) FEN() string {
	return g.pos.ToFEN()
}

// StartFEN returns the FEN the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Moves returns the applied moves in order.
func (g *Game) Moves() []board.Move {
	out := make([]board.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// Replay rebuilds a game from a starting FEN and a list of moves in
// coordinate notation, re-validating every move along the way. Used when
// loading stored games; a corrupt record surfaces as an error, never as a
// partially replayed game.
func Replay(startFEN string, moves []string) (*Game, error) {
	g, err := NewFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	for i, s := range moves {
		m, err := board.ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		outcome := g.SubmitMove(MoveRequest{From: m.From(), To: m.To(), Promotion: m.Promotion()})
		if !outcome.Applied {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, s, outcome.Reason)
		}
	}
	return g, nil
}
