package main

import (
	"log"

	"github.com/Kariqs/carta-vendor-portal/initializers"
	"github.com/Kariqs/carta-vendor-portal/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToBackend()
}

func main() {
	server := routes.NewServer(initializers.Cfg.AllowedOrigins)
	if err := server.Run(":" + initializers.Cfg.Port); err != nil {
		log.Fatal(err)
	}
}
