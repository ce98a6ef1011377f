package models

import "time"

// Commit is one entry of the activity feed.
type Commit struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Message is the full commit message (may span multiple lines)
	Message string
	// When is the committer timestamp, carrying the committer's UTC offset
	When time.Time
	// RepoURL is the https browse URL of the repository, used for links
	RepoURL string
}

// NewCommit creates a new Commit
func NewCommit(hash, message string, when time.Time, repoURL string) Commit {
	return Commit{
		Hash:    hash,
		Message: message,
		When:    when,
		RepoURL: repoURL,
	}
}

// CommitURL returns the browse URL for this commit
func (c Commit) CommitURL() string {
	return c.RepoURL + "/commit/" + c.Hash
}
