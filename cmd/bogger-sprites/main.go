// Command bogger-sprites writes the generated sprite set as PNG files, for
// checking the artwork outside the game.
package main

import (
	"flag"
	"log"

	"github.com/golangdaddy/bogger/pkg/sprite"
)

func main() {
	out := flag.String("out", "sprites", "output directory")
	seed := flag.Uint64("seed", 1, "generator seed")
	flag.Parse()

	if err := sprite.NewSet(*seed).Export(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated sprites in %s", *out)
}
