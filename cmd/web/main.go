package main

import "devconnect_backend/internal/app"

func main() {
	app.Run()
}
