package main

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	"github.com/tendermint/tendermint/types"
)

// abciClient is the part of the node API that the commands use.
type abciClient interface {
	// Query returns all models found under given path and data together
	// with the height of the block the state was read at.
	Query(path string, data []byte) ([]weave.Model, int64, error)
	// ChainID returns the identifier of the chain.
	ChainID() (string, error)
	// Broadcast submits a transaction and waits until it is included in a
	// block. Data returned by the delivery is returned.
	Broadcast(tx []byte) ([]byte, error)
}

// newClient returns a client connected to the node at given address.
var newClient = func(addr string) abciClient {
	return &tmClient{rpc: rpcclient.NewHTTP(addr, "/websocket")}
}

type tmClient struct {
	rpc *rpcclient.HTTP
}

func (c *tmClient) Query(path string, data []byte) ([]weave.Model, int64, error) {
	resp, err := c.rpc.ABCIQuery(path, data)
	if err != nil {
		return nil, 0, errors.Wrap(err, "abci query")
	}
	if resp.Response.IsErr() {
		return nil, 0, errors.Wrapf(errors.ErrState, "query failed with code %d: %s", resp.Response.Code, resp.Response.Log)
	}
	height := resp.Response.Height
	if len(resp.Response.Key) == 0 {
		return nil, height, nil
	}

	var keys, values app.ResultSet
	if err := keys.Unmarshal(resp.Response.Key); err != nil {
		return nil, 0, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := values.Unmarshal(resp.Response.Value); err != nil {
		return nil, 0, errors.Wrap(err, "cannot unmarshal values")
	}
	models, err := app.JoinResults(&keys, &values)
	if err != nil {
		return nil, 0, err
	}
	return models, height, nil
}

func (c *tmClient) ChainID() (string, error) {
	genesis, err := c.rpc.Genesis()
	if err != nil {
		return "", errors.Wrap(err, "genesis")
	}
	return genesis.Genesis.ChainID, nil
}

func (c *tmClient) Broadcast(tx []byte) ([]byte, error) {
	resp, err := c.rpc.BroadcastTxCommit(types.Tx(tx))
	if err != nil {
		return nil, errors.Wrap(err, "broadcast")
	}
	if resp.CheckTx.IsErr() {
		return nil, errors.Wrapf(errors.ErrState, "check failed with code %d: %s", resp.CheckTx.Code, resp.CheckTx.Log)
	}
	if resp.DeliverTx.IsErr() {
		return nil, errors.Wrapf(errors.ErrState, "deliver failed with code %d: %s", resp.DeliverTx.Code, resp.DeliverTx.Log)
	}
	return resp.DeliverTx.Data, nil
}

// nodeClient returns the client for the node configured for the command.
func nodeClient(fl interface{ GetString(string) (string, error) }) (abciClient, error) {
	addr, err := fl.GetString("tm")
	if err != nil {
		return nil, err
	}
	return newClient(addr), nil
}
