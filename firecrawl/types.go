package firecrawl

// scrapeRequest is the JSON body of POST /v1/scrape.
type scrapeRequest struct {
	URL                 string            `json:"url"`
	Formats             []string          `json:"formats"`
	OnlyMainContent     *bool             `json:"onlyMainContent,omitempty"`
	IncludeTags         []string          `json:"includeTags,omitempty"`
	ExcludeTags         []string          `json:"excludeTags,omitempty"`
	Headers             map[string]string `json:"headers,omitempty"`
	WaitFor             int               `json:"waitFor,omitempty"`
	Mobile              bool              `json:"mobile,omitempty"`
	SkipTLSVerification bool              `json:"skipTlsVerification,omitempty"`
	Timeout             int               `json:"timeout,omitempty"`
	Location            *location         `json:"location,omitempty"`
	RemoveBase64Images  bool              `json:"removeBase64Images,omitempty"`
	BlockAds            bool              `json:"blockAds,omitempty"`
}

type location struct {
	Country   string   `json:"country,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// scrapeResponse is the JSON body returned by POST /v1/scrape.
type scrapeResponse struct {
	Success bool       `json:"success"`
	Data    scrapeData `json:"data"`
	Error   string     `json:"error,omitempty"`
}

type scrapeData struct {
	Markdown *string  `json:"markdown"`
	Links    []string `json:"links"`
	Metadata metadata `json:"metadata"`
	Warning  string   `json:"warning"`
}

type metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	SourceURL   string `json:"sourceURL"`
	StatusCode  int    `json:"statusCode"`
	Error       string `json:"error"`
}
