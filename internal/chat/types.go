package chat

import "axle-assist/internal/model"

// RespondInput is one chat turn as received from the client. History is the
// client-held transcript; the server keeps no session state.
type RespondInput struct {
	Text    string
	History []model.ConversationTurn
	Lang    model.Lang
}

// Response kinds. The kind field discriminates the JSON payload shape the
// chat client renders.
const (
	KindLoads        = "loads"
	KindMyBids       = "my_bids"
	KindActionPoints = "action_points"
	KindText         = "text"
)

// Response is a sealed union of the four payload shapes a turn can produce.
type Response interface {
	responseKind() string
}

// LoadsResponse carries live search results.
type LoadsResponse struct {
	Kind    string           `json:"kind"`
	Preface string           `json:"preface"`
	Loads   []model.LoadCard `json:"loads"`
}

// BidsResponse carries the operator's bid list.
type BidsResponse struct {
	Kind    string          `json:"kind"`
	Preface string          `json:"preface"`
	Bids    []model.BidCard `json:"bids"`
}

// ActionPointsResponse carries outstanding follow-ups, split by stage.
type ActionPointsResponse struct {
	Kind            string                  `json:"kind"`
	Preface         string                  `json:"preface"`
	AwaitingArrival []model.ActionPointCard `json:"awaitingArrival"`
	UploadPOD       []model.ActionPointCard `json:"uploadPOD"`
}

// TextResponse is a plain conversational reply.
type TextResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (LoadsResponse) responseKind() string        { return KindLoads }
func (BidsResponse) responseKind() string         { return KindMyBids }
func (ActionPointsResponse) responseKind() string { return KindActionPoints }
func (TextResponse) responseKind() string         { return KindText }
