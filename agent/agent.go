// Package agent binds the restaurant tools and a fixed instruction prompt to
// an OpenAI functions agent and runs one conversation turn at a time.
package agent

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
	"github.com/tmc/langchaingo/memory/sqlite3"
	"github.com/tmc/langchaingo/schema"
	lctools "github.com/tmc/langchaingo/tools"

	"github.com/findmydinner/find-my-dinner/places"
	"github.com/findmydinner/find-my-dinner/tools"
)

const defaultModel = "gpt-4o"

// Options configures a FindMyDinner agent. OpenAIKey is always required;
// PlacesKey is required unless a PlacesService override is supplied.
type Options struct {
	OpenAIKey string
	PlacesKey string
	Model     string

	// HistoryPath, when set, persists the conversation to a sqlite database
	// under the given session name instead of keeping it only in memory.
	HistoryPath    string
	HistorySession string

	// PlacesService overrides the default places client, mainly for tests.
	PlacesService tools.PlacesService

	// ChatModel overrides the default OpenAI model, mainly for tests.
	ChatModel llms.Model
}

// zeroTemperature pins the reasoning engine to deterministic output. The
// agent executor does not forward chain call options to the model, so the
// temperature has to be forced on every call.
type zeroTemperature struct {
	llms.Model
}

func (m zeroTemperature) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	options = append(options, llms.WithTemperature(0))
	return m.Model.GenerateContent(ctx, messages, options...)
}

func (m zeroTemperature) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	options = append(options, llms.WithTemperature(0))
	return m.Model.Call(ctx, prompt, options...)
}

// Agent answers one user utterance per call, letting the reasoning engine
// decide whether to invoke the restaurant tools first.
type Agent struct {
	executor *agents.Executor
}

func New(opts Options) (*Agent, error) {
	if opts.OpenAIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	service := opts.PlacesService
	if service == nil {
		client, err := places.NewClient(opts.PlacesKey)
		if err != nil {
			return nil, fmt.Errorf("create places client: %w", err)
		}
		service = client
	}

	chatModel := opts.ChatModel
	if chatModel == nil {
		model := opts.Model
		if model == "" {
			model = defaultModel
		}

		llm, err := openai.New(
			openai.WithToken(opts.OpenAIKey),
			openai.WithModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("create openai llm: %w", err)
		}
		chatModel = llm
	}

	toolset := []lctools.Tool{
		tools.NewFindNearbyRestaurants(service),
		tools.NewGetRestaurantDetails(service),
	}

	conversationBuffer, err := newConversationBuffer(opts)
	if err != nil {
		return nil, err
	}

	functionsAgent := agents.NewOpenAIFunctionsAgent(
		zeroTemperature{chatModel},
		toolset,
		agents.NewOpenAIOption().WithSystemMessage(SystemPrompt),
	)

	executor := agents.NewExecutor(
		functionsAgent,
		agents.WithMemory(conversationBuffer),
		// Malformed intermediate tool-call output degrades the turn instead
		// of failing it.
		agents.WithParserErrorHandler(agents.NewParserErrorHandler(nil)),
	)

	return &Agent{executor: executor}, nil
}

func newConversationBuffer(opts Options) (schema.Memory, error) {
	if opts.HistoryPath == "" {
		return memory.NewConversationBuffer(memory.WithReturnMessages(true)), nil
	}

	db, err := sql.Open("sqlite3", opts.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	session := opts.HistorySession
	if session == "" {
		session = "find-my-dinner"
	}

	chatHistory := sqlite3.NewSqliteChatMessageHistory(
		sqlite3.WithSession(session),
		sqlite3.WithDB(db),
	)

	return memory.NewConversationBuffer(
		memory.WithReturnMessages(true),
		memory.WithChatHistory(chatHistory),
	), nil
}

// Respond runs one conversation turn and always yields text when the call
// itself succeeds. Errors from the reasoning engine or the places backend
// propagate to the caller untouched.
func (a *Agent) Respond(ctx context.Context, userText string) (string, error) {
	output, err := chains.Run(ctx, a.executor, userText)
	if err != nil {
		return "", fmt.Errorf("agent turn failed: %w", err)
	}

	if output == "" {
		return DefaultAnswer, nil
	}

	return output, nil
}
