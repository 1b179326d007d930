package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zuo-Peng/claude-history/internal/history"
	"github.com/Zuo-Peng/claude-history/internal/parse"
	"github.com/Zuo-Peng/claude-history/internal/search"
)

// Handlers serves read-only queries. Every request reloads the logs.
type Handlers struct {
	reader *history.Reader
}

func NewHandlers(reader *history.Reader) *Handlers {
	return &Handlers{reader: reader}
}

// GetStats handles GET /api/stats
func (h *Handlers) GetStats(c *gin.Context) {
	respondData(c, h.reader.Summarize())
}

// GetProjects handles GET /api/projects
func (h *Handlers) GetProjects(c *gin.Context) {
	respondList[string, history.Pagination](c, h.reader.Projects(), nil)
}

// GetConversations handles GET /api/conversations?page=&per_page=
func (h *Handlers) GetConversations(c *gin.Context) {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		respondBadRequest(c, "page must be an integer")
		return
	}
	perPage, err := intQuery(c, "per_page", history.DefaultPerPage)
	if err != nil {
		respondBadRequest(c, "per_page must be an integer")
		return
	}

	items, p := history.Paginate(h.reader.AssembleAll(), page, perPage)
	respondList(c, items, &p)
}

type searchHit struct {
	parse.ConversationRecord
	MessageIndex int    `json:"messageIndex"`
	Snippet      string `json:"snippet"`
}

// Search handles GET /api/search?q=&project=&scope=full|meta
func (h *Handlers) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondBadRequest(c, "q is required")
		return
	}

	results := h.reader.Find(search.Options{
		Query:   query,
		Project: strings.TrimSpace(c.Query("project")),
		Scope:   search.ParseScope(c.Query("scope")),
	})

	hits := make([]searchHit, len(results))
	for i, r := range results {
		hits[i] = searchHit{ConversationRecord: r.Record, MessageIndex: r.MessageIndex, Snippet: r.Snippet}
	}
	respondList[searchHit, history.Pagination](c, hits, nil)
}

type conversationDetail struct {
	history.Detail
	HasFullContent bool `json:"hasFullContent"`
}

// GetConversation handles GET /api/conversation/:sessionId
func (h *Handlers) GetConversation(c *gin.Context) {
	id := c.Param("sessionId")
	d, ok := h.reader.Conversation(id)
	if !ok {
		respondNotFound(c, "conversation not found: "+id)
		return
	}
	respondData(c, conversationDetail{
		Detail:         d,
		HasFullContent: d.Conversation != nil && d.Conversation.HasFullContent,
	})
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
