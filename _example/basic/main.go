package main

import (
	"fmt"
	"log"

	"github.com/hupe1980/idxgo"
)

// weekday indexes the seven days of a week.
type weekday struct{}

func (weekday) Size() int { return 7 }

var names = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func main() {
	fmt.Println("--- Construction ---")

	wed, err := idxgo.New[weekday](2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("checked:", names[wed.Int()])

	if _, err := idxgo.New[weekday](7); err != nil {
		fmt.Println("rejected:", err)
	}

	fmt.Println()
	fmt.Println("--- Arrays ---")

	hours := idxgo.NewArray[weekday, int]()
	for i := range idxgo.All[weekday]() {
		if i.Int() < 5 {
			hours.Set(i, 8)
		}
	}

	total := 0
	for i, h := range hours.All() {
		fmt.Printf("%s: %dh\n", names[i.Int()], h)
		total += h
	}
	fmt.Println("total:", total)

	fmt.Println()
	fmt.Println("--- Parse ---")

	for _, s := range []string{"0", "6", "7", "x"} {
		i, err := idxgo.Parse[weekday](s)
		if err != nil {
			fmt.Printf("%q -> %v\n", s, err)
			continue
		}
		fmt.Printf("%q -> %s\n", s, names[i.Int()])
	}
}
