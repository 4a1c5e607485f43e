package domain

import "time"

// BrokenLink is a local path that did not resolve, plus paths that look like
// what the author meant. Suggestions may be empty.
type BrokenLink struct {
	Path        string   `json:"path"`
	Suggestions []string `json:"suggestions"`
}

type FileLinksResult struct {
	OK     []string     `json:"ok"`
	Broken []BrokenLink `json:"broken"`
}

func (r FileLinksResult) Len() int { return len(r.OK) + len(r.Broken) }

type URLLinksResult struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

func (r URLLinksResult) Len() int { return len(r.Valid) + len(r.Invalid) }

// Report combines both result groups of one verification run.
type Report struct {
	RunID    string          `json:"run_id"`
	Document string          `json:"document"`
	Files    FileLinksResult `json:"files"`
	URLs     URLLinksResult  `json:"urls"`
	Elapsed  time.Duration   `json:"elapsed"`
}

func (r Report) Total() int { return r.Files.Len() + r.URLs.Len() }

func (r Report) BrokenCount() int { return len(r.Files.Broken) + len(r.URLs.Invalid) }
