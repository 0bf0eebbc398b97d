package main

import "github.com/Egor213/LogHandler/internal/app"

func main() {
	app.Run()
}
