package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
                        __
 _    ______  _______/ /_  ___________ _____ ____
| |/|/ / __ \/ ___/ __  / / / / ___/ __ \/ __ \/ _ \
|__/|__/\____/_/  \__,_/\__,_/____/\__,_/\__, /\___/
                                        /____/
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
