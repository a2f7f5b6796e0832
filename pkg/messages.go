package pkg

import (
	"encoding/json"
	"io"

	"github.com/qnkhuat/fatbot/pkg/strategy"
)

// MoveRequest asks for a move in the position given as FEN. Depth and
// Strategy override the server defaults when set.
type MoveRequest struct {
	FEN      string `json:"fen"`
	Depth    int    `json:"depth,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

type MoveResponse struct {
	Move     string `json:"move"`
	SAN      string `json:"san"`
	Color    string `json:"color"`
	Strategy string `json:"strategy"`
	// Score is a string so that the infinite sentinels survive JSON.
	Score    string `json:"score,omitempty"`
	Fallback bool   `json:"fallback"`
	Nodes    int    `json:"nodes"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}

type StrategiesResponse struct {
	Default    string   `json:"default"`
	Strategies []string `json:"strategies"`
}

func NewMoveResponse(r Reply, strategyName string) MoveResponse {
	resp := MoveResponse{
		Move:     r.Move.String(),
		SAN:      r.SAN,
		Color:    r.Color.String(),
		Strategy: strategyName,
		Fallback: r.Fallback,
		Nodes:    r.Stats.Nodes + r.Stats.Leaves,
	}
	if strategyName == strategy.NameFatBot {
		resp.Score = r.Score.String()
	}
	return resp
}

func Encode(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}

func Decode(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
