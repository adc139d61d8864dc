package main

import (
	"errors"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordusage"
	"github.com/projectdiscovery/wordusage/internal/runner"
)

func main() {
	cliOpts, err := runner.ParseFlags()
	if err != nil {
		if errors.Is(err, wordusage.ErrUsage) {
			runner.PrintUsage()
			return
		}
		gologger.Fatal().Msgf("%v", err)
	}

	r, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
