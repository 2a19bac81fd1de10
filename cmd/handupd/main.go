// handupd serves the in-memory marketplace API for local development.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"handup/internal/server"
)

func main() {
	_ = godotenv.Load()

	addr := os.Getenv("HANDUP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	secret := []byte(os.Getenv("HANDUP_JWT_SECRET"))
	if len(secret) == 0 {
		// Ephemeral secret: fine for a dev server whose state is also ephemeral.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatalf("generate secret: %v", err)
		}
		log.Println("HANDUP_JWT_SECRET not set, using ephemeral secret", hex.EncodeToString(secret[:4])+"…")
	}

	store, err := server.NewStore()
	if err != nil {
		log.Fatalf("seed store: %v", err)
	}
	tokens := server.NewTokenIssuer(secret, 24*time.Hour)

	log.Println("marketplace API listening on", addr)
	log.Println("seed accounts: anya.volunteer@example.com / mali.nimman@example.com (password: password)")
	if err := http.ListenAndServe(addr, server.NewRouter(store, tokens)); err != nil {
		log.Fatal(err)
	}
}
