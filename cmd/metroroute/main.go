// Command metroroute plans routes on a transit network.
//
// Usage:
//
//	metroroute demo [-penalty N]
//	metroroute route -from ID -to ID [-avoid LINES] [-config FILE]
//	metroroute serve [-port N] [-config FILE]
//	metroroute export (-out FILE | -db FILE | -pg) [-config FILE]
//	metroroute import-gtfs -gtfs PATH [-db FILE] [-transfer MIN] [-route-types LIST]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local") // local values win

	InitLogging()

	cmd := "demo"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "demo":
		err = cmdDemo(args)
	case "route":
		err = cmdRoute(args)
	case "serve":
		err = cmdServe(args)
	case "export":
		err = cmdExport(args)
	case "import-gtfs":
		err = cmdImportGTFS(args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: metroroute <demo|route|serve|export|import-gtfs> [flags]")
}
