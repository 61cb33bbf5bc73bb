package main

import (
	"flag"

	"lost-and-found/backend/global"
	"lost-and-found/backend/initialize"
	"lost-and-found/backend/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	adminEmail := flag.String("admin-email", "", "Seed admin account email (optional)")
	adminPass := flag.String("admin-pass", "", "Seed admin account password")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	if *adminEmail != "" && *adminPass != "" {
		if err := app.Users.EnsureAdmin("Administrator", *adminEmail, *adminPass); err != nil {
			global.Logger.Warn().Err(err).Msg("admin seed failed")
		}
	}

	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
