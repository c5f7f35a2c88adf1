package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"othello/communication"
	"othello/game"

	"github.com/pkg/errors"
)

// Client is an engine agent backed by a remote agent server.
type Client struct {
	serverURL string
	http      *http.Client
}

func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		http:      &http.Client{Timeout: time.Minute},
	}
}

func (c *Client) ComputeMove(opponentsMove game.Turn, msLeft int) (game.Turn, error) {
	body, err := json.Marshal(communication.MoveRequest{OpponentsMove: opponentsMove, MsLeft: msLeft})
	if err != nil {
		return game.Pass, errors.Wrap(err, "failed to encode move request")
	}

	resp, err := c.http.Post(c.serverURL+"/move", "application/json", bytes.NewReader(body))
	if err != nil {
		return game.Pass, errors.Wrap(err, "failed to reach agent")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Pass, errors.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var move communication.MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return game.Pass, errors.Wrap(err, "failed to decode move response")
	}
	return move.Move, nil
}
