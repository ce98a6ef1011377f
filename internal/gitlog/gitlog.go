package gitlog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gitfeed/gitfeed/internal/models"

	"github.com/go-git/go-git/v5"
)

// IsRepo checks if the path is a git repository
func IsRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// Discover walks up from the working directory to the repository root.
func Discover() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	path := cwd
	for {
		if IsRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", os.ErrNotExist
		}
		path = parent
	}
}

// RemoteURL returns the browse URL of the named remote, normalized to
// https form. Empty when the remote is missing or has no URL.
func RemoteURL(repo *git.Repository, name string) string {
	remote, err := repo.Remote(name)
	if err != nil || len(remote.Config().URLs) == 0 {
		return ""
	}
	return NormalizeURL(remote.Config().URLs[0])
}

// NormalizeURL rewrites a git remote URL into a plain https browse URL:
// ssh forms become https and the ".git" suffix is dropped.
//
//	NormalizeURL("git@github.com:org/repo.git") → "https://github.com/org/repo"
//	NormalizeURL("https://github.com/org/repo") → "https://github.com/org/repo"
func NormalizeURL(raw string) string {
	url := strings.TrimSuffix(strings.TrimSpace(raw), ".git")

	switch {
	case strings.HasPrefix(url, "git@"):
		url = strings.TrimPrefix(url, "git@")
		url = strings.Replace(url, ":", "/", 1)
		return "https://" + url
	case strings.HasPrefix(url, "ssh://"):
		url = strings.TrimPrefix(url, "ssh://")
		url = strings.TrimPrefix(url, "git@")
		return "https://" + url
	default:
		return url
	}
}

// RecentCommits returns up to n commits from the repository containing
// the working directory, most recent first. Every failure mode — no
// repository, no HEAD, no remote, empty history — yields an empty
// slice: the feed simply has nothing to show.
func RecentCommits(n int, remoteName string) []models.Commit {
	root, err := Discover()
	if err != nil {
		return nil
	}

	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil
	}

	url := RemoteURL(repo, remoteName)

	head, err := repo.Head()
	if err != nil {
		return nil
	}

	iter, err := repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil
	}
	defer iter.Close()

	var commits []models.Commit
	for len(commits) < n {
		c, err := iter.Next()
		if err != nil {
			break
		}

		commits = append(commits, models.NewCommit(
			c.Hash.String()[:7],
			c.Message,
			c.Committer.When, // keeps the committer's UTC offset
			url,
		))
	}

	return commits
}
