package main

import (
	"log"

	"github.com/gin-gonic/gin"

	config "github.com/wamisho-d/ecommerece/configs"
	"github.com/wamisho-d/ecommerece/internal/auth"
	"github.com/wamisho-d/ecommerece/internal/db"
	"github.com/wamisho-d/ecommerece/internal/handlers"
	"github.com/wamisho-d/ecommerece/internal/notifier"
	"github.com/wamisho-d/ecommerece/internal/store"
)

func main() {

	appCfg := config.LoadAppConfig()

	gdb, err := db.Open(config.LoadDBConfig())
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}
	log.Println("Database connected and migrated successfully")

	st := store.New(gdb)
	tokens := auth.NewManager(appCfg.JWTSecret)
	notify := notifier.New(config.LoadAfricaTalkingConfig(), config.LoadEmailConfig())

	r := gin.Default()
	handlers.Routes(r, st, tokens, notify)

	if err := r.Run(appCfg.Addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
