package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/primeasset/recruit-landing/pkg/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using environment only")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
