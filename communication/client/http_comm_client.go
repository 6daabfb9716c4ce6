package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"rpsplus/communication"
	"rpsplus/game"
	"rpsplus/gamemaster"
	"rpsplus/judge"
	"strings"
)

// ErrServerUnreachable is returned when the match server cannot be reached at
// all, as opposed to the server reporting that its judge is unavailable.
var ErrServerUnreachable = errors.New("match server unreachable")

// ClientCommunicator plays one match hosted on a remote match server.
type ClientCommunicator struct {
	serverURL string
	http      *http.Client
	matchID   string
}

// NewClientCommunicator starts a match on the server at serverURL.
func NewClientCommunicator(ctx context.Context, serverURL string, httpClient *http.Client) (*ClientCommunicator, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	cc := &ClientCommunicator{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		http:      httpClient,
	}

	var m communication.MatchResponse
	if err := cc.do(ctx, http.MethodPost, "/matches", nil, &m); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	cc.matchID = m.ID
	return cc, nil
}

func (cc *ClientCommunicator) MatchID() string {
	return cc.matchID
}

func (cc *ClientCommunicator) PlayRound(ctx context.Context, input string) (string, error) {
	var resp communication.RoundResponse
	err := cc.do(ctx, http.MethodPost, "/matches/"+cc.matchID+"/rounds", communication.RoundRequest{Input: input}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Reply, nil
}

func (cc *ClientCommunicator) State(ctx context.Context) (game.Snapshot, error) {
	var m communication.MatchResponse
	if err := cc.do(ctx, http.MethodGet, "/matches/"+cc.matchID, nil, &m); err != nil {
		return game.Snapshot{}, err
	}
	return m.State, nil
}

func (cc *ClientCommunicator) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, cc.serverURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cc.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e communication.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		msg := e.Error
		if msg == "" {
			msg = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", gamemaster.ErrMatchNotFound, msg)
		case http.StatusServiceUnavailable:
			return fmt.Errorf("%w: %s", judge.ErrUnavailable, msg)
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
