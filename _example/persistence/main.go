package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/idxgo"
	"github.com/hupe1980/idxgo/persistence"
)

// shelf indexes the slots of a small inventory shelf.
type shelf struct{}

func (shelf) Size() int { return 8 }

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func main() {
	dir, err := os.MkdirTemp("", "idxgo-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "shelf.idx")

	fmt.Println("--- Save ---")

	inventory := idxgo.NewArray[shelf, item]()
	inventory.Set(idxgo.Must[shelf](0), item{Name: "bolts", Count: 120})
	inventory.Set(idxgo.Must[shelf](3), item{Name: "nuts", Count: 80})
	inventory.Set(idxgo.Must[shelf](7), item{Name: "washers", Count: 250})

	if err := persistence.SaveFile(filename, inventory, persistence.WithCompression(persistence.CompressionLZ4)); err != nil {
		log.Fatal(err)
	}

	info, err := os.Stat(filename)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", filepath.Base(filename), info.Size())

	fmt.Println()
	fmt.Println("--- Load ---")

	restored, err := persistence.LoadFile[shelf, item](filename)
	if err != nil {
		log.Fatal(err)
	}

	for i, it := range restored.All() {
		if it.Name == "" {
			continue
		}
		fmt.Printf("slot %s: %d x %s\n", i, it.Count, it.Name)
	}

	// A snapshot of one domain size refuses to load into another.
	fmt.Println()
	fmt.Println("--- Guard ---")

	if _, err := persistence.LoadFile[wideShelf, item](filename); err != nil {
		fmt.Println("rejected:", err)
	}
}

type wideShelf struct{}

func (wideShelf) Size() int { return 16 }
