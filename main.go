package main

import (
	"github.com/Shubhamsh1838/Highway-delite/internals/config"
	"github.com/Shubhamsh1838/Highway-delite/internals/initializers"
	"github.com/Shubhamsh1838/Highway-delite/internals/routes"
	"github.com/Shubhamsh1838/Highway-delite/internals/utils"
)

func main() {
	initializers.LoadEnvVariables()

	cfg := config.Load()

	initializers.ConnectToDb(cfg.DatabaseURL)
	initializers.SyncDatabase()
	initializers.StartCleanup(config.GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 30, true))

	r := routes.SetupRouter(initializers.DB, cfg, utils.NewGoogleUserinfoClient())

	r.Run()
}
