package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/iov-one/weave"
	"github.com/stretchr/testify/require"
)

// runCmd executes arenacli with given arguments and returns whatever the
// command wrote to the output.
func runCmd(t testing.TB, input io.Reader, args ...string) ([]byte, error) {
	t.Helper()

	if input == nil {
		input = bytes.NewReader(nil)
	}
	var output bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(input)
	root.SetOut(&output)
	root.SetErr(io.Discard)
	err := root.Execute()
	return output.Bytes(), err
}

// fakeClient is an in memory node used instead of the tendermint client.
type fakeClient struct {
	height    int64
	chainID   string
	models    map[string][]weave.Model
	data      []byte
	broadcast [][]byte
}

func (c *fakeClient) Query(path string, data []byte) ([]weave.Model, int64, error) {
	return c.models[path+":"+string(data)], c.height, nil
}

func (c *fakeClient) ChainID() (string, error) { return c.chainID, nil }

func (c *fakeClient) Broadcast(tx []byte) ([]byte, error) {
	c.broadcast = append(c.broadcast, tx)
	return c.data, nil
}

func (c *fakeClient) set(path string, key []byte, m interface{ Marshal() ([]byte, error) }) {
	raw, err := m.Marshal()
	if err != nil {
		panic(err)
	}
	if c.models == nil {
		c.models = make(map[string][]weave.Model)
	}
	k := path + ":" + string(key)
	c.models[k] = append(c.models[k], weave.Model{Key: key, Value: raw})
}

// withClient replaces the node client for the duration of the test.
func withClient(t *testing.T, c abciClient) {
	t.Helper()
	prev := newClient
	newClient = func(string) abciClient { return c }
	t.Cleanup(func() { newClient = prev })
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, nil, "version")
	require.NoError(t, err)
	require.Equal(t, gitHash+"\n", string(out))
}
