package usecase

// Log prefixes
const (
	LogPrefixRespond = "internal.chat.usecase.Respond"
)

// Default reply texts, keyed by reply language.
const (
	DefaultPromptEN = "I can help you with:\n• Search loads\n• Show my bids\n• View action points\n\nWhat would you like to do?"
	DefaultPromptHI = "मैं आपकी इसमें मदद कर सकता हूँ:\n• लोड खोजें\n• मेरी बोलियाँ देखें\n• एक्शन पॉइंट देखें\n\nआप क्या करना चाहेंगे?"

	SearchFailureEN = "Sorry, I couldn't fetch loads right now. Please try again in a bit."
	SearchFailureHI = "क्षमा करें, अभी लोड नहीं मिल पाए। कृपया थोड़ी देर में फिर से कोशिश करें।"
)
