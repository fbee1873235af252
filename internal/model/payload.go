package model

// IssuePayload is a GitHub issue draft. Pure data, never transmitted.
type IssuePayload struct {
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
}

// PRPayload is a GitHub pull request draft targeting a fix branch.
type PRPayload struct {
	Branch string `json:"branch"`
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
	Head   string `json:"head"`
	Base   string `json:"base"`
}

// Report bundles a detected error with the tracker payloads drafted for it.
type Report struct {
	ID    string              `json:"id"`
	Error ErrorClassification `json:"error"`
	Issue IssuePayload        `json:"issue"`
	PR    PRPayload           `json:"pr"`
}
