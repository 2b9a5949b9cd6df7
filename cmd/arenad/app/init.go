package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions will produce some basic options for one rich
// account that is also the arena admin, to use for dev mode.
//
// Optional arguments are the token ticker and the hex encoded address
// of the rich account.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the private key
		bz, secret, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(secret)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	collector, err := hex.DecodeString("3b11c732b8fc1f09beb34031302fe2ab347c5c14")
	if err != nil {
		return nil, errors.Wrap(err, "cannot hex decode collector address")
	}
	coins := func(whole int64) dict {
		return dict{"whole": whole, "ticker": ticker}
	}
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins":   array{coins(123456789)},
			},
		},
		"conf": dict{
			"cash": dict{
				"metadata":          dict{"schema": 1},
				"collector_address": weave.Address(collector),
				"minimal_fee":       dict{"ticker": ticker},
			},
			"migration": dict{
				"metadata": dict{"schema": 1},
				"admin":    addr,
			},
			"arena": dict{
				"metadata":            dict{"schema": 1},
				"name":                "attention",
				"token":               ticker,
				"admin":               addr,
				"funds":               addr,
				"min_contribution":    coins(1),
				"arena_fee":           500,
				"max_topic_fee":       2000,
				"max_choice_fee":      2000,
				"topic_creation_fee":  coins(10),
				"choice_creation_fee": coins(1),
			},
		},
		"initialize_schema": []dict{
			{"pkg": "allowance", "ver": 1},
			{"pkg": "arena", "ver": 1},
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "utils", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	application, err := Application("arena", Stack(), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&allowance.Initializer{},
		&arena.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a newly generated key, along with
// the hex encoded private key that controls it.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	raw, err := privKey.Marshal()
	if err != nil {
		return nil, "", errors.Wrap(err, "cannot serialize private key")
	}
	return privKey.PublicKey().Address(), hex.EncodeToString(raw), nil
}
