package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"swedishkings/internal/app"
	"swedishkings/internal/bot"
	"swedishkings/internal/config"
	"swedishkings/internal/domain"
	"swedishkings/internal/gamelog"
	"swedishkings/internal/server"
)

func main() {
	_ = godotenv.Load()

	if err := config.LoadGameConfig(os.Getenv("GAME_CONFIG")); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.GetGameConfig()

	if cfg.NamePoolPath != "" {
		if err := bot.LoadNamePool(cfg.NamePoolPath); err != nil {
			log.Fatalf("name pool: %v", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	svc := app.NewService(rng, gamelog.New())
	mode := domain.Mode(cfg.DefaultMode)
	delay := time.Duration(cfg.BotTurnDelayMillis) * time.Millisecond
	session := server.GetSession(svc, mode, delay)

	webDist := os.Getenv("WEB_DIST")
	if webDist == "" {
		webDist = "web/dist"
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Routes(session, webDist)); err != nil {
		log.Fatal(err)
	}
}
