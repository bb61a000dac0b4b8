package domain

type ResearchSearchRequest struct {
	Query       string `json:"query" validate:"required"`
	Topic       string `json:"topic"`
	MaxResults  int    `json:"maxResults"`
	SearchDepth string `json:"searchDepth"`
	Summarize   *bool  `json:"summarize"`
}

type ResearchSearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type ResearchSearchResponse struct {
	Query       string                 `json:"query"`
	Topic       string                 `json:"topic,omitempty"`
	MaxResults  int                    `json:"maxResults"`
	SearchDepth string                 `json:"searchDepth"`
	Results     []ResearchSearchResult `json:"results"`
	Summary     string                 `json:"summary,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content"`
}

type TitleRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

type TitleResponse struct {
	Title string `json:"title"`
}
