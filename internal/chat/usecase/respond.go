package usecase

import (
	"context"
	"fmt"

	"axle-assist/internal/chat"
	"axle-assist/internal/loads"
	"axle-assist/internal/model"
	"axle-assist/internal/router"
)

// Respond classifies the utterance and dispatches to one of the four
// response shapes. A routing failure is fatal for the turn and propagates;
// an upstream search failure is absorbed into a generic text reply so the
// user never sees upstream error detail.
func (uc *implUsecase) Respond(ctx context.Context, input chat.RespondInput) (chat.Response, error) {
	lang := input.Lang.Normalize()

	decision, err := uc.router.Classify(ctx, input.Text, input.History, lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixRespond, err)
	}

	switch decision.Action {
	case router.ActionSearchLoads:
		return uc.searchLoads(ctx, decision, lang), nil

	case router.ActionShowMyBids:
		return chat.BidsResponse{
			Kind:    chat.KindMyBids,
			Preface: decision.ReplyText,
			Bids:    bidDataset(),
		}, nil

	case router.ActionActionPoints:
		arrival, pod := actionPointDatasets()
		return chat.ActionPointsResponse{
			Kind:            chat.KindActionPoints,
			Preface:         decision.ReplyText,
			AwaitingArrival: arrival,
			UploadPOD:       pod,
		}, nil

	default:
		return chat.TextResponse{
			Kind: chat.KindText,
			Text: replyOrDefault(decision.ReplyText, lang),
		}, nil
	}
}

// searchLoads runs the sanitize-then-fetch branch. The sanitizer guarantees
// a complete, allow-listed parameter set regardless of what the model put
// in decision.Params.
func (uc *implUsecase) searchLoads(ctx context.Context, decision router.Decision, lang model.Lang) chat.Response {
	params := loads.Sanitize(decision.Params)

	cards, err := uc.repo.SearchLoads(ctx, params)
	if err != nil {
		uc.l.Warnf(ctx, "%s: load search failed, degrading to text reply: %v", LogPrefixRespond, err)
		return chat.TextResponse{
			Kind: chat.KindText,
			Text: searchFailureText(lang),
		}
	}

	return chat.LoadsResponse{
		Kind:    chat.KindLoads,
		Preface: decision.ReplyText,
		Loads:   cards,
	}
}

func replyOrDefault(text string, lang model.Lang) string {
	if text != "" {
		return text
	}
	if lang == model.LangHindi {
		return DefaultPromptHI
	}
	return DefaultPromptEN
}

func searchFailureText(lang model.Lang) string {
	if lang == model.LangHindi {
		return SearchFailureHI
	}
	return SearchFailureEN
}
