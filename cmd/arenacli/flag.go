package main

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/spf13/pflag"
)

// flAddress registers an address flag. An empty default leaves the address
// unset.
func flAddress(fl *pflag.FlagSet, name, usage string) *weave.Address {
	var a weave.Address
	fl.Var(&addressValue{a: &a}, name, usage)
	return &a
}

type addressValue struct {
	a *weave.Address
}

func (v *addressValue) String() string {
	if v.a == nil || len(*v.a) == 0 {
		return ""
	}
	return v.a.String()
}

func (v *addressValue) Set(raw string) error {
	a, err := weave.ParseAddress(raw)
	if err != nil {
		return err
	}
	*v.a = a
	return nil
}

func (v *addressValue) Type() string {
	return "address"
}

// flCoin registers a coin flag using the human readable format, for example
// "1.5 IOV".
func flCoin(fl *pflag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			panic("invalid default value of " + name + ": " + err.Error())
		}
	}
	fl.Var(&coinValue{c: &c}, name, usage)
	return &c
}

type coinValue struct {
	c *coin.Coin
}

func (v *coinValue) String() string {
	if v.c == nil || v.c.Ticker == "" {
		return ""
	}
	return v.c.String()
}

func (v *coinValue) Set(raw string) error {
	c, err := coin.ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

func (v *coinValue) Type() string {
	return "coin"
}
