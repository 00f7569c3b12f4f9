package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/reviewpilot/internal/core"
	"github.com/sevigo/reviewpilot/internal/gitutil"
)

// batchEntry is one item of a batch file. Either URL or the
// owner/repo/pr_number triple must be set.
type batchEntry struct {
	URL    string `yaml:"url"`
	Owner  string `yaml:"owner"`
	Repo   string `yaml:"repo"`
	Number int    `yaml:"pr_number"`
}

type batchFile struct {
	Reviews []batchEntry `yaml:"reviews"`
}

// LoadBatchFile reads a YAML batch file:
//
//	reviews:
//	  - owner: octo
//	    repo: hello
//	    pr_number: 12
//	  - url: https://github.com/octo/hello/pull/13
func LoadBatchFile(path string) ([]core.PullRequestRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}
	return ParseBatch(data)
}

// ParseBatch decodes batch file content, keeping the entry order.
func ParseBatch(data []byte) ([]core.PullRequestRef, error) {
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(f.Reviews) == 0 {
		return nil, fmt.Errorf("batch file contains no reviews")
	}

	refs := make([]core.PullRequestRef, 0, len(f.Reviews))
	for i, e := range f.Reviews {
		if e.URL != "" {
			owner, repo, number, err := gitutil.ParsePullRequestURL(e.URL)
			if err != nil {
				return nil, fmt.Errorf("review %d: %w", i+1, err)
			}
			refs = append(refs, core.PullRequestRef{Owner: owner, Repo: repo, Number: number})
			continue
		}
		if e.Owner == "" || e.Repo == "" {
			return nil, fmt.Errorf("review %d: owner and repo must be set", i+1)
		}
		if e.Number <= 0 {
			return nil, fmt.Errorf("review %d: pull request number must be positive, got %d", i+1, e.Number)
		}
		refs = append(refs, core.PullRequestRef{Owner: e.Owner, Repo: e.Repo, Number: e.Number})
	}
	return refs, nil
}
