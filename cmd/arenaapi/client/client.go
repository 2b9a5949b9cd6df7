package client

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/iov-one/weave"
	weaveapp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
)

// Getter is implemented by any service that provides access to the
// tendermint JSON-RPC API.
type Getter interface {
	Get(ctx context.Context, path string, dest interface{}) error
}

// HTTPClient implements Getter using HTTP transport.
type HTTPClient struct {
	apiURL string
	cli    http.Client
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		apiURL: apiURL,
	}
}

func (c *HTTPClient) Get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequest("GET", c.apiURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "create http request")
	}
	req = req.WithContext(ctx)

	resp, err := c.cli.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 1e5))
		return errors.Wrapf(errors.ErrDatabase, "bad response: %d %s", resp.StatusCode, string(b))
	}

	payload := jsonrpcResponse{Result: dest}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1e6)).Decode(&payload); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if payload.Error != nil {
		return payload.Error
	}
	return nil
}

type jsonrpcResponse struct {
	Error  *jsonResponseError
	Result interface{}
}

type jsonResponseError struct {
	Code    int
	Message string
	Data    string
}

func (e *jsonResponseError) Error() string {
	if len(e.Data) != 0 {
		return fmt.Sprintf("code %d, %s", e.Code, e.Data)
	}
	return fmt.Sprintf("code %d, %s", e.Code, e.Message)
}

// Node reads the application state through the ABCI query interface of a
// tendermint node.
type Node struct {
	get Getter
}

func NewNode(g Getter) *Node {
	return &Node{get: g}
}

// Query returns all models found for given path and data together with
// the height of the block the state was read at. Missing entities result in
// an empty list.
func (n *Node) Query(ctx context.Context, path string, data []byte) ([]weave.Model, int64, error) {
	v := make(url.Values)
	v.Add("path", `"`+path+`"`)
	v.Add("data", "0x"+hex.EncodeToString(data))

	var res abciQueryResponse
	if err := n.get.Get(ctx, "/abci_query?"+v.Encode(), &res); err != nil {
		return nil, 0, errors.Wrap(err, "abci query")
	}
	if res.Response.Code != 0 {
		return nil, 0, errors.Wrapf(errors.ErrDatabase, "query failed with code %d: %s", res.Response.Code, res.Response.Log)
	}
	height := res.Response.Height
	if len(res.Response.Key) == 0 {
		return nil, height, nil
	}

	var keys, values weaveapp.ResultSet
	if err := keys.Unmarshal(res.Response.Key); err != nil {
		return nil, 0, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := values.Unmarshal(res.Response.Value); err != nil {
		return nil, 0, errors.Wrap(err, "cannot unmarshal values")
	}
	models, err := weaveapp.JoinResults(&keys, &values)
	if err != nil {
		return nil, 0, err
	}
	return models, height, nil
}

// KeyQuery loads a single entity into destination and returns the height it
// was read at. ErrNotFound is returned if it does not exist.
func (n *Node) KeyQuery(ctx context.Context, path string, key []byte, destination weave.Persistent) (int64, error) {
	models, height, err := n.Query(ctx, path, key)
	if err != nil {
		return 0, err
	}
	if len(models) == 0 {
		return 0, errors.Wrapf(errors.ErrNotFound, "%s %x", path, key)
	}
	if err := destination.Unmarshal(models[0].Value); err != nil {
		return 0, errors.Wrap(err, "cannot unmarshal to destination")
	}
	return height, nil
}

// Height returns the height of the latest block.
func (n *Node) Height(ctx context.Context) (int64, error) {
	var res statusResponse
	if err := n.get.Get(ctx, "/status", &res); err != nil {
		return 0, errors.Wrap(err, "status")
	}
	return res.SyncInfo.LatestBlockHeight, nil
}

type abciQueryResponse struct {
	Response struct {
		Code   uint32
		Log    string
		Key    []byte
		Value  []byte
		Height int64 `json:"height,string"`
	}
}

type statusResponse struct {
	SyncInfo struct {
		LatestBlockHeight int64 `json:"latest_block_height,string"`
	} `json:"sync_info"`
}
