package main

import "github.com/renan-throsa/Golden-leaf/internal/app"

// @title           Golden Leaf API
// @version         1.0
// @description     Client and clerk management service.
// @BasePath        /
func main() {
	app.Run()
}
