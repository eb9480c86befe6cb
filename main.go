// main.go
package main

import (
	"log"

	"github.com/spf13/pflag"

	"wolfcast/config"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (yaml, toml or json)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	g.Run()
}
