package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are the intent router for Axle AI, a freight load-bidding assistant used by fleet operators.

Classify the user's latest message into exactly one action:
1. search_loads: the user is affirmatively looking for available loads to bid on (e.g. "show loads from Delhi", "any open trucks today"). Extract search parameters from the message where present.
2. show_my_bids: the user asks about bids they already placed (status, revisions, wins, losses).
3. action_points: the user asks about pending follow-ups such as attaching a vehicle or uploading proof of delivery.
4. text_reply: greetings, questions about capabilities, and anything that does not clearly fit the above. When in doubt, choose text_reply.

Trigger phrases above are examples, not an exhaustive list; infer the intent. Pick search_loads only when the user is actually searching for loads.

Always fill every params field. Use an empty string for anything the message does not specify. replyText is the short conversational lead-in shown to the user above any cards.`

	PromptHistoryPrefix = "Recent conversation:\n"

	PromptLangEnglish = "Write replyText in English."
	PromptLangHindi   = "Write replyText in Hindi (Devanagari script)."
)

// Router configuration
const (
	RouterTemperature = 0.1

	// HistoryWindow bounds how many trailing conversation turns are sent as
	// context. Older turns are dropped, not summarized.
	HistoryWindow = 8
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgEmptyResponse   = "empty LLM response"
	ErrMsgJSONParseFailed = "response is not valid decision JSON"
	ErrMsgUnknownAction   = "action outside the permitted set"
)

// decisionSchema constrains the model to the exact decision shape: the
// three top-level fields, and all nine search parameters as required
// strings. The model may not omit or invent fields.
var decisionSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"action": map[string]any{
			"type": "STRING",
			"enum": []string{
				string(ActionSearchLoads),
				string(ActionShowMyBids),
				string(ActionActionPoints),
				string(ActionTextReply),
			},
		},
		"replyText": map[string]any{"type": "STRING"},
		"params": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"offset":                  map[string]any{"type": "STRING"},
				"status_list":             map[string]any{"type": "STRING"},
				"origin_city_list":        map[string]any{"type": "STRING"},
				"truck_types":             map[string]any{"type": "STRING"},
				"axle_current_week_loads": map[string]any{"type": "STRING"},
				"apply_100km_logic":       map[string]any{"type": "STRING"},
				"include_adhoc_intracity": map[string]any{"type": "STRING"},
				"loads_with_bid_active":   map[string]any{"type": "STRING"},
				"limit":                   map[string]any{"type": "STRING"},
			},
			"required": []string{
				"offset",
				"status_list",
				"origin_city_list",
				"truck_types",
				"axle_current_week_loads",
				"apply_100km_logic",
				"include_adhoc_intracity",
				"loads_with_bid_active",
				"limit",
			},
		},
	},
	"required": []string{"action", "replyText", "params"},
}
