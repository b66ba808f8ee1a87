package main

import (
	"fmt"

	"github.com/hupe1980/idxgo"
)

// players and pieces are distinct domains, so a player index can never be
// used to address a piece, even though both are just small integers.
type players struct{}

func (players) Size() int { return 4 }

type pieces struct{}

func (pieces) Size() int { return 32 }

type player struct {
	score int
}

type piece struct {
	owner    idxgo.Index[players]
	position int
}

type game struct {
	players idxgo.Array[players, player]
	pieces  idxgo.Array[pieces, piece]
}

func newGame() *game {
	g := &game{
		players: idxgo.NewArray[players, player](),
		pieces:  idxgo.NewArray[pieces, piece](),
	}

	// Deal the pieces out round-robin.
	owner := idxgo.First[players]()
	for i := range g.pieces.All() {
		g.pieces.Set(i, piece{owner: owner})
		if next, ok := owner.Next(); ok {
			owner = next
		} else {
			owner = idxgo.First[players]()
		}
	}

	return g
}

func (g *game) play() {
	// Every player scores a point per round.
	for id := range idxgo.All[players]() {
		g.players.Ptr(id).score++
	}

	// The first piece moves forward.
	g.pieces.Ptr(idxgo.First[pieces]()).position++

	// Runtime values go through the checked constructor; out-of-range ones
	// are simply not playable.
	if id, err := idxgo.New[players](8); err == nil {
		g.players.Ptr(id).score = 9
	}
}

func main() {
	g := newGame()

	for round := 1; round <= 3; round++ {
		g.play()
	}

	fmt.Println("--- Standings ---")
	for id, p := range g.players.All() {
		fmt.Printf("player %s: score %d\n", id, p.score)
	}

	first := g.pieces.At(idxgo.First[pieces]())
	fmt.Printf("piece 0: owner %s, position %d\n", first.owner, first.position)
}
