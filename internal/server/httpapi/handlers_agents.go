package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stakeboard/stakeboard/internal/agents"
)

type chatRequest struct {
	Message   string         `json:"message" binding:"required"`
	AgentType string         `json:"agent_type"`
	Context   map[string]any `json:"context"`
}

type chatResponse struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	AgentType    string         `json:"agent_type"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata"`
	Error        string         `json:"error,omitempty"`
}

type searchRequest struct {
	Query      string `json:"query" binding:"required"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Success       bool           `json:"success"`
	Query         string         `json:"query"`
	Summary       string         `json:"summary"`
	SearchResults map[string]any `json:"search_results,omitempty"`
	SourcesCount  int            `json:"sources_count"`
	Error         string         `json:"error,omitempty"`
}

func (h *Handlers) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	kind, err := agents.ParseKind(req.AgentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Unknown agent type %q", req.AgentType)})
		return
	}

	agent, _ := h.registry.Get(kind)
	result, err := agent.Execute(c.Request.Context(), req.Message)
	if err != nil {
		h.logger.Error(c.Request.Context(), "chat agent execution failed", "agent_type", kind, "error", err)
		c.JSON(http.StatusOK, chatResponse{
			Success:      false,
			AgentType:    string(kind),
			Capabilities: []string{},
			Error:        "Agent execution failed",
		})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Success:      true,
		Response:     result.Content,
		AgentType:    string(kind),
		Capabilities: agent.Capabilities(),
		Metadata:     result.Metadata,
	})
}

func (h *Handlers) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	agent, _ := h.registry.Get(agents.KindSearch)
	result, err := agent.Execute(c.Request.Context(), agents.SearchPrompt(req.Query))
	if err != nil {
		h.logger.Error(c.Request.Context(), "search agent execution failed", "error", err)
		c.JSON(http.StatusOK, searchResponse{
			Success: false,
			Query:   req.Query,
			Error:   "Agent execution failed",
		})
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		Success:       true,
		Query:         req.Query,
		Summary:       result.Content,
		SearchResults: result.Metadata,
		SourcesCount:  agents.SourcesCount(result.Metadata),
	})
}

func (h *Handlers) AgentCapabilities(c *gin.Context) {
	chat, _ := h.registry.Get(agents.KindChat)
	search, _ := h.registry.Get(agents.KindSearch)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"capabilities": gin.H{
			"chat_agent":   chat.Capabilities(),
			"search_agent": search.Capabilities(),
		},
	})
}
