// stationuptime - Charging Station Uptime Calculator
//
// stationuptime reads station and charger availability reports and prints
// an uptime percentage per station.
package main

import (
	"os"

	"github.com/ccollicutt/stationuptime/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
