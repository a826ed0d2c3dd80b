package chat

import "context"

// UseCase turns one user utterance into one typed chat response.
type UseCase interface {
	Respond(ctx context.Context, input RespondInput) (Response, error)
}
