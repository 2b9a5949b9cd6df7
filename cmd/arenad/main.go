package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	arenad "github.com/iov-one/arena/cmd/arenad/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome  = "home"
	varHome   *string
	flagLevel = "log_level"
	varLevel  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".arena")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLevel = flag.String(flagLevel, "info", "minimal level of the logged messages (debug, info, error, none)")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("arenad")
	fmt.Println("          Attention market node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("getblock  Extract a block from blockchain.db")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.arena")
  -log_level string
        minimal level of the logged messages (default "info")`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	level, err := log.AllowLevel(*varLevel)
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		helpMessage()
		os.Exit(1)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stdout)), level).
		With("module", "arena")

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(arenad.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(arenad.GenerateApp, logger, *varHome, rest)
	case "getblock":
		err = server.GetBlockCmd(rest)
	case "version":
		fmt.Println(weave.Version)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
