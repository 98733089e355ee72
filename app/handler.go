package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/findmydinner/find-my-dinner/agent"
	"github.com/findmydinner/find-my-dinner/config"
)

const missingKeysWarning = "Please provide your OpenAI and Google Places API keys to use this application."

type App struct {
	config   *config.Config
	upgrader websocket.Upgrader
	history  *ChatLog

	mu    sync.Mutex
	agent *agent.Agent
}

func NewApp(cfg *config.Config) *App {
	app := &App{
		config:   cfg,
		upgrader: websocket.Upgrader{},
		history:  NewChatLog(),
	}

	if cfg.OpenAI.APIKey != "" && cfg.Places.APIKey != "" {
		if err := app.buildAgent(); err != nil {
			slog.Error("failed to build agent from configured keys", "error", err)
		}
	}

	return app
}

// buildAgent snapshots the current keys and swaps in a fresh agent.
// Callers must hold no lock; it takes its own.
func (a *App) buildAgent() error {
	a.mu.Lock()
	opts := agent.Options{
		OpenAIKey:      a.config.OpenAI.APIKey,
		PlacesKey:      a.config.Places.APIKey,
		Model:          a.config.OpenAI.Model,
		HistoryPath:    a.config.History.Path,
		HistorySession: a.config.History.Session,
	}
	a.mu.Unlock()

	built, err := agent.New(opts)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.agent = built
	a.mu.Unlock()

	return nil
}

func (a *App) currentAgent() *agent.Agent {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.agent
}

func (a *App) Router() *gin.Engine {
	r := gin.Default()

	r.StaticFile("/", "web/index.html")

	r.GET("/history", a.handleHistory)
	r.POST("/keys", a.handleSaveKeys)
	r.GET("/chat", a.handleChat)

	return r
}

func (a *App) handleHistory(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"messages": a.history.Messages()})
}

// handleSaveKeys accepts credentials from the page. Explicit values override
// whatever came from the environment or the config file.
func (a *App) handleSaveKeys(ctx *gin.Context) {
	var req SaveKeysRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.mu.Lock()
	if req.OpenAIKey != "" {
		a.config.OpenAI.APIKey = req.OpenAIKey
	}
	if req.PlacesKey != "" {
		a.config.Places.APIKey = req.PlacesKey
	}
	missing := a.config.OpenAI.APIKey == "" || a.config.Places.APIKey == ""
	a.mu.Unlock()

	if missing {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Both API keys are required"})
		return
	}

	if err := a.buildAgent(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "API keys saved successfully"})
}

// handleChat runs the websocket turn loop: one user utterance in, one
// assistant message out. A failed turn is recorded and displayed as an error
// message; the session stays open.
func (a *App) handleChat(ctx *gin.Context) {
	conn, err := a.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	slog.Info("chat session started", "session", sessionID)

	for _, message := range a.history.Messages() {
		if err := conn.WriteJSON(WebSocketsMessage{Type: "chat", Data: message}); err != nil {
			slog.Error("failed to replay history", "session", sessionID, "error", err)
			return
		}
	}

	for {
		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			slog.Info("chat session closed", "session", sessionID, "error", err)
			return
		}
		if req.Content == "" {
			continue
		}

		current := a.currentAgent()
		if current == nil {
			if err := conn.WriteJSON(WebSocketsMessage{Type: "warning", Data: missingKeysWarning}); err != nil {
				return
			}
			continue
		}

		userMessage := a.history.Append(RoleUser, req.Content, false)
		if err := conn.WriteJSON(WebSocketsMessage{Type: "chat", Data: userMessage}); err != nil {
			return
		}

		response, err := current.Respond(ctx.Request.Context(), req.Content)

		var assistantMessage ChatMessage
		if err != nil {
			slog.Error("agent turn failed", "session", sessionID, "error", err)
			assistantMessage = a.history.Append(RoleAssistant, fmt.Sprintf("Error: %v", err), true)
		} else {
			assistantMessage = a.history.Append(RoleAssistant, response, false)
		}

		if err := conn.WriteJSON(WebSocketsMessage{Type: "chat", Data: assistantMessage}); err != nil {
			slog.Error("failed to write to ws connection", "session", sessionID, "error", err)
			return
		}
	}
}
