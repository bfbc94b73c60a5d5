package main

import (
	"flag"
	"os"

	"github.com/samiksha-ambastha1205/round2-mechatron/gateservice"
)

func main() {
	port := flag.Int("port", 0, "Override PORT")
	envFile := flag.String("env-file", "", "dotenv file to load (default .env)")
	flag.Parse()

	opts := gateservice.Options{Port: *port}
	if *envFile != "" {
		opts.EnvFiles = []string{*envFile}
	}
	if err := gateservice.Run(opts); err != nil {
		os.Exit(1)
	}
}
