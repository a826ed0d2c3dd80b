package router

import (
	"context"
	"encoding/json"
	"strings"

	"axle-assist/internal/model"
	"axle-assist/pkg/gemini"
)

// Classify sends the user's text plus a bounded history window to the model
// and parses the structured decision. Any provider failure or
// schema-violating output is fatal for the turn; there is no fallback
// decision and no retry.
func (r *SemanticRouter) Classify(ctx context.Context, text string, history []model.ConversationTurn, lang model.Lang) (Decision, error) {
	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{
				{Text: PromptRouterSystem + "\n\n" + langDirective(lang)},
			},
		},
		Contents: buildContents(text, history),
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      RouterTemperature,
			ResponseMIMEType: "application/json",
			ResponseSchema:   decisionSchema,
		},
	})
	if err != nil {
		return Decision{}, &RoutingError{Reason: ErrMsgLLMCallFailed, Err: err}
	}

	responseText := strings.TrimSpace(resp.Text())
	if responseText == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return Decision{}, &RoutingError{Reason: ErrMsgEmptyResponse}
	}
	responseText = stripCodeFence(responseText)

	var decision Decision
	if err := json.Unmarshal([]byte(responseText), &decision); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return Decision{}, &RoutingError{Reason: ErrMsgJSONParseFailed, Err: err}
	}
	if !decision.Action.Valid() {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownAction, decision.Action)
		return Decision{}, &RoutingError{Reason: ErrMsgUnknownAction}
	}

	r.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, decision.Action)
	return decision, nil
}

// buildContents assembles the model conversation: up to HistoryWindow
// trailing turns, then the current message as the final user turn.
func buildContents(text string, history []model.ConversationTurn) []gemini.Content {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	contents := make([]gemini.Content, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == model.RoleAssistant {
			role = "model"
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: turn.Text}},
		})
	}
	return append(contents, gemini.Content{
		Role:  "user",
		Parts: []gemini.Part{{Text: text}},
	})
}

func langDirective(lang model.Lang) string {
	if lang.Normalize() == model.LangHindi {
		return PromptLangHindi
	}
	return PromptLangEnglish
}

// stripCodeFence removes a markdown code block wrapper if the model added
// one despite the JSON response mode.
func stripCodeFence(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
