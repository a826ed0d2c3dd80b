package router

import (
	"context"

	"axle-assist/internal/model"
	"axle-assist/pkg/gemini"
	"axle-assist/pkg/log"
)

// Router is the interface for semantic intent routing
type Router interface {
	Classify(ctx context.Context, text string, history []model.ConversationTurn, lang model.Lang) (Decision, error)
}

// SemanticRouter classifies user intent using LLM structured output
type SemanticRouter struct {
	llm *gemini.Client
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm *gemini.Client, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
