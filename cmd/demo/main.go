package main

import (
	"context"
	"log"

	"github.com/dlomanov/clearable/cmd/demo/config"
	"github.com/dlomanov/clearable/internal/apps/demo"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	c := config.Parse()
	c.BuildVersion = buildVersion
	c.BuildDate = buildDate
	c.BuildCommit = buildCommit
	if err := demo.Run(context.Background(), &c); err != nil {
		log.Fatal(err)
	}
}
