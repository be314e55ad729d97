package main

import (
	"os"

	"omnichat/client/internal/app"
)

// @title        OmniChat Client API
// @version      1.0
// @description  Local control API of the OmniChat conversation engine.
// @host         localhost:8765
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
