package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/iov-one/arena/cmd/arenaapi/client"
	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Node provides read access to the application state. Every read returns
// the height of the block the state was read at.
type Node interface {
	Query(ctx context.Context, path string, data []byte) ([]weave.Model, int64, error)
	KeyQuery(ctx context.Context, path string, key []byte, destination weave.Persistent) (int64, error)
}

var _ Node = (*client.Node)(nil)

// BuildHash is set during the compilation time.
var BuildHash = "dev"

type InfoHandler struct {
	Node   Node
	Logger log.Logger
}

func (h *InfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var conf arena.Configuration
	height, err := h.Node.KeyQuery(r.Context(), "/arena/conf", nil, &conf)
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	JSONResp(w, http.StatusOK, struct {
		BuildHash     string               `json:"build_hash"`
		Height        int64                `json:"height"`
		Configuration *arena.Configuration `json:"configuration"`
	}{
		BuildHash:     BuildHash,
		Height:        height,
		Configuration: &conf,
	})
}

type TopicHandler struct {
	Node   Node
	Logger log.Logger
}

func (h *TopicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "topicID")
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	var topic arena.Topic
	if _, err := h.Node.KeyQuery(r.Context(), "/topics", arena.TopicKey(topicID), &topic); err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	JSONResp(w, http.StatusOK, &topic)
}

// TopicChoicesHandler lists all choices of a topic, settled at the block
// they were read at.
type TopicChoicesHandler struct {
	Node   Node
	Logger log.Logger
}

func (h *TopicChoicesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "topicID")
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	models, height, err := h.Node.Query(r.Context(), "/choices/topic", arena.TopicKey(topicID))
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	topic, err := fetchTopic(r.Context(), h.Node, topicID)
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	cycle := topic.CurrentCycle(height)
	choices := make([]*arena.Choice, 0, len(models))
	for _, m := range models {
		var c arena.Choice
		if err := c.Unmarshal(m.Value); err != nil {
			writeErr(w, h.Logger, errors.Wrap(err, "unmarshal choice"))
			return
		}
		arena.SettleChoice(&c, topic.AccrualRate, cycle)
		choices = append(choices, &c)
	}
	JSONResp(w, http.StatusOK, struct {
		Objects []*arena.Choice `json:"objects"`
	}{
		Objects: choices,
	})
}

type ChoiceHandler struct {
	Node   Node
	Logger log.Logger
}

func (h *ChoiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "topicID")
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	choiceID, err := pathID(r, "choiceID")
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	var choice arena.Choice
	height, err := h.Node.KeyQuery(r.Context(), "/choices", arena.ChoiceKey(topicID, choiceID), &choice)
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	topic, err := fetchTopic(r.Context(), h.Node, topicID)
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	arena.SettleChoice(&choice, topic.AccrualRate, topic.CurrentCycle(height))
	JSONResp(w, http.StatusOK, &choice)
}

// PositionsHandler lists all positions of an account, settled at the block
// they were read at. Tombstoned positions are omitted.
type PositionsHandler struct {
	Node   Node
	Logger log.Logger
}

func (h *PositionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	owner, err := weave.ParseAddress(mux.Vars(r)["owner"])
	if err != nil {
		writeErr(w, h.Logger, errors.Wrap(errors.ErrInput, "owner must be a valid address"))
		return
	}
	models, height, err := h.Node.Query(r.Context(), "/positions/owner", owner)
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}

	topics := make(map[uint64]*arena.Topic)
	positions := make([]*arena.Position, 0, len(models))
	for _, m := range models {
		var p arena.Position
		if err := p.Unmarshal(m.Value); err != nil {
			writeErr(w, h.Logger, errors.Wrap(err, "unmarshal position"))
			return
		}
		if p.Tombstoned() {
			continue
		}
		topic, ok := topics[p.TopicID]
		if !ok {
			if topic, err = fetchTopic(r.Context(), h.Node, p.TopicID); err != nil {
				writeErr(w, h.Logger, err)
				return
			}
			topics[p.TopicID] = topic
		}
		arena.SettlePosition(&p, topic.AccrualRate, topic.CurrentCycle(height))
		positions = append(positions, &p)
	}
	JSONResp(w, http.StatusOK, struct {
		Objects []*arena.Position `json:"objects"`
	}{
		Objects: positions,
	})
}

type AllowancesHandler struct {
	Node   Node
	Logger log.Logger
}

func (h *AllowancesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	owner, err := weave.ParseAddress(mux.Vars(r)["owner"])
	if err != nil {
		writeErr(w, h.Logger, errors.Wrap(errors.ErrInput, "owner must be a valid address"))
		return
	}
	models, _, err := h.Node.Query(r.Context(), "/allowances/owner", owner)
	if err != nil {
		writeErr(w, h.Logger, err)
		return
	}
	res := make([]*allowance.Allowance, 0, len(models))
	for _, m := range models {
		var a allowance.Allowance
		if err := a.Unmarshal(m.Value); err != nil {
			writeErr(w, h.Logger, errors.Wrap(err, "unmarshal allowance"))
			return
		}
		res = append(res, &a)
	}
	JSONResp(w, http.StatusOK, struct {
		Objects []*allowance.Allowance `json:"objects"`
	}{
		Objects: res,
	})
}

// fetchTopic loads the topic that provides the cycle length and the accrual
// rate for settling its choices. Topic settings never change, so the height
// it is read at does not matter.
func fetchTopic(ctx context.Context, node Node, topicID uint64) (*arena.Topic, error) {
	var topic arena.Topic
	if _, err := node.KeyQuery(ctx, "/topics", arena.TopicKey(topicID), &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInput, "%s must be a number", name)
	}
	return n, nil
}

// writeErr writes an error response with the status code matching the
// error kind. Errors of unknown kind are logged.
func writeErr(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.ErrNotFound.Is(err):
		JSONErr(w, http.StatusNotFound, err.Error())
	case errors.ErrInput.Is(err):
		JSONErr(w, http.StatusBadRequest, err.Error())
	case client.ErrUnavailable.Is(err):
		JSONErr(w, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
	default:
		logger.Error("node request failed", "err", err)
		JSONErr(w, http.StatusBadGateway, http.StatusText(http.StatusBadGateway))
	}
}

// JSONResp write content as JSON encoded response.
func JSONResp(w http.ResponseWriter, code int, content interface{}) {
	b, err := json.MarshalIndent(content, "", "\t")
	if err != nil {
		code = http.StatusInternalServerError
		b = []byte(`{"errors":["Internal Server Error"]}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// JSONErr write single error as JSON encoded response.
func JSONErr(w http.ResponseWriter, code int, errText string) {
	JSONResp(w, code, struct {
		Errors []string `json:"errors"`
	}{
		Errors: []string{errText},
	})
}
