package main

import (
	"log"
	"net/http"

	"github.com/joeshaw/envdecode"

	"github.com/minaorangina/ironworks/server"
	"github.com/minaorangina/ironworks/store"
)

type config struct {
	Addr string `env:"IRONWORKS_ADDR,default=:8000"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore())
	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, s))
}
