package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Tarnwood/Shellfall/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Shellfall")
	ebiten.SetWindowSize(1280, 720)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
