// Command chesscore is an interactive front end for the rules engine.
// Moves are entered in coordinate notation ("e2e4", "e7e8q"); games can be
// saved to and loaded from the local game database.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"chesscore/internal/board"
	"chesscore/internal/game"
	"chesscore/internal/storage"
)

var (
	startFEN = flag.String("fen", board.StartFEN, "starting position in FEN")
	dbDir    = flag.String("db", "", "game database directory (default: platform data dir)")
	noSave   = flag.Bool("no-save", false, "disable game persistence")
)

func main() {
	flag.Parse()

	var store *storage.Store
	if !*noSave {
		var err error
		if *dbDir != "" {
			store, err = storage.Open(*dbDir)
		} else {
			store, err = storage.OpenDefault()
		}
		if err != nil {
			log.Printf("Warning: persistence disabled: %v", err)
		} else {
			defer store.Close()
		}
	}

	g, err := game.NewFromFEN(*startFEN)
	if err != nil {
		log.Fatalf("bad starting position: %v", err)
	}

	fmt.Print(g.Position())
	fmt.Println(`Enter moves like "e2e4" or a command (board, moves, fen, undo, save, load <id>, list, quit).`)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "exit":
			return

		case "board":
			fmt.Print(g.Position())

		case "fen":
			fmt.Println(g.FEN())

		case "moves":
			var ss []string
			for _, m := range g.LegalMoves() {
				ss = append(ss, m.String())
			}
			fmt.Println(strings.Join(ss, " "))

		case "undo":
			if err := g.UndoMove(); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(g.Position())

		case "save":
			id := time.Now().Format("20060102-150405")
			if len(fields) > 1 {
				id = fields[1]
			}
			saveGame(store, id, g)

		case "load":
			if len(fields) < 2 {
				fmt.Println("usage: load <id>")
				continue
			}
			loaded := loadGame(store, fields[1])
			if loaded != nil {
				g = loaded
				fmt.Print(g.Position())
			}

		case "list":
			listGames(store)

		default:
			submit(g, line)
		}
	}
}

// submit parses line as a move and reports the outcome.
func submit(g *game.Game, line string) {
	m, err := board.ParseMove(line)
	if err != nil {
		fmt.Printf("unrecognized input %q (try \"e2e4\" or a command)\n", line)
		return
	}

	outcome := g.SubmitMove(game.MoveRequest{From: m.From(), To: m.To(), Promotion: m.Promotion()})
	if !outcome.Applied {
		fmt.Printf("rejected: %v\n", outcome.Reason)
		return
	}

	if outcome.Captured != board.NoPiece {
		fmt.Printf("captured %s %s\n", outcome.Captured.Color(), outcome.Captured.Type())
	}
	fmt.Print(g.Position())

	switch {
	case outcome.Status == game.Checkmate:
		fmt.Printf("checkmate, %s wins\n", outcome.Winner)
	case outcome.Status.Terminal():
		fmt.Println(outcome.Status)
	case g.Position().InCheck():
		fmt.Println("check")
	}
}

func saveGame(store *storage.Store, id string, g *game.Game) {
	if store == nil {
		fmt.Println("persistence is disabled")
		return
	}
	var moves []string
	for _, m := range g.Moves() {
		moves = append(moves, m.String())
	}
	rec := &storage.Record{
		ID:       id,
		StartFEN: g.StartFEN(),
		Moves:    moves,
		Status:   g.Status().String(),
	}
	if err := store.SaveGame(rec); err != nil {
		log.Printf("save failed: %v", err)
		return
	}
	fmt.Printf("saved as %s\n", id)
}

func loadGame(store *storage.Store, id string) *game.Game {
	if store == nil {
		fmt.Println("persistence is disabled")
		return nil
	}
	rec, err := store.LoadGame(id)
	if err != nil {
		fmt.Printf("load failed: %v\n", err)
		return nil
	}
	g, err := game.Replay(rec.StartFEN, rec.Moves)
	if err != nil {
		fmt.Printf("stored game %s is corrupt: %v\n", id, err)
		return nil
	}
	return g
}

func listGames(store *storage.Store) {
	if store == nil {
		fmt.Println("persistence is disabled")
		return
	}
	recs, err := store.ListGames()
	if err != nil {
		log.Printf("list failed: %v", err)
		return
	}
	if len(recs) == 0 {
		fmt.Println("no saved games")
		return
	}
	for _, rec := range recs {
		fmt.Printf("%s  %d moves  %s  (updated %s)\n",
			rec.ID, len(rec.Moves), rec.Status, rec.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
