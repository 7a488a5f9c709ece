// Command token mints a personal API token for the StudyFlow HTTP API.
//
//	go run ./cmd/token -subject alice -ttl 720h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/handler"
	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "", "token subject, one dashboard per subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if *subject == "" {
		log.Fatal("-subject is required")
	}

	token, err := handler.NewToken(secret, *subject, *ttl)
	if err != nil {
		log.Fatal("failed sign token " + err.Error())
	}

	fmt.Println(token)
}
