package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	weaveapp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTendermintServer(t *testing.T, topic *arena.Topic) *httptest.Server {
	t.Helper()

	raw, err := topic.Marshal()
	require.NoError(t, err)
	keys, err := (&weaveapp.ResultSet{Results: [][]byte{arena.TopicKey(topic.ID)}}).Marshal()
	require.NoError(t, err)
	values, err := (&weaveapp.ResultSet{Results: [][]byte{raw}}).Marshal()
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			io.WriteString(w, `{"jsonrpc": "2.0", "id": "", "result": {"sync_info": {"latest_block_height": "42"}}}`)
		case "/abci_query":
			if r.URL.Query().Get("data") != fmt.Sprintf("0x%x", arena.TopicKey(topic.ID)) {
				io.WriteString(w, `{"jsonrpc": "2.0", "id": "", "result": {"response": {"height": "41"}}}`)
				return
			}
			fmt.Fprintf(w, `{"jsonrpc": "2.0", "id": "", "result": {"response": {"key": %q, "value": %q, "height": "41"}}}`,
				base64.StdEncoding.EncodeToString(keys),
				base64.StdEncoding.EncodeToString(values))
		default:
			io.WriteString(w, `{"jsonrpc": "2.0", "id": "", "error": {"code": -32601, "message": "Method not found"}}`)
		}
	}))
}

func TestNodeQuery(t *testing.T) {
	topic := &arena.Topic{
		Metadata:    &weave.Metadata{Schema: 1},
		ID:          3,
		Creator:     weavetest.NewCondition().Address(),
		CycleLength: 10,
		AccrualRate: arena.MaxRate,
	}
	tm := newTendermintServer(t, topic)
	defer tm.Close()

	node := NewNode(NewHTTPClient(tm.URL))
	ctx := context.Background()

	height, err := node.Height(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), height)

	// The query carries its own height, independent of the latest block.
	var got arena.Topic
	height, err = node.KeyQuery(ctx, "/topics", arena.TopicKey(3), &got)
	require.NoError(t, err)
	assert.Equal(t, int64(41), height)
	assert.Equal(t, topic.Creator, got.Creator)
	assert.Equal(t, int64(10), got.CycleLength)
	assert.Equal(t, uint32(arena.MaxRate), got.AccrualRate)

	models, height, err := node.Query(ctx, "/topics", arena.TopicKey(4))
	require.NoError(t, err)
	assert.Empty(t, models)
	assert.Equal(t, int64(41), height)

	_, err = node.KeyQuery(ctx, "/topics", arena.TopicKey(4), &got)
	assert.True(t, errors.ErrNotFound.Is(err), "got %v", err)

	var dest interface{}
	err = NewHTTPClient(tm.URL).Get(ctx, "/unknown", &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Method not found")
}

type failingGetter struct {
	calls int
}

func (g *failingGetter) Get(context.Context, string, interface{}) error {
	g.calls++
	return errors.Wrap(errors.ErrDatabase, "connection refused")
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	next := &failingGetter{}
	b := NewBreakerGetter("test", next, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := b.Get(ctx, "/status", nil)
		assert.True(t, errors.ErrDatabase.Is(err), "got %v", err)
	}

	err := b.Get(ctx, "/status", nil)
	assert.True(t, ErrUnavailable.Is(err), "got %v", err)
	assert.Equal(t, 3, next.calls)
}
