// Package fetch downloads base16 scheme files from a GitHub repository tree.
//
// Downloads are keyed by the latest commit touching the tree path: each run
// resolves that commit, skips entirely when its directory already exists,
// and otherwise pulls every YAML file in bounded concurrent batches.
package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/huemap-cli/huemap/network"
	"github.com/huemap-cli/huemap/util"
)

// Repo identifies a directory inside a GitHub repository at a specific ref.
type Repo struct {
	Owner string
	Name  string
	Ref   string
	Path  string
}

var treeURLPattern = regexp.MustCompile(`^https://github\.com/(?P<owner>[^/]+)/(?P<name>[^/]+)/tree/(?P<ref>[^/]+)/(?P<path>.+)$`)

// ParseRepoURL extracts repository coordinates from a GitHub tree URL of the
// form https://github.com/owner/repo/tree/ref/path.
func ParseRepoURL(url string) (Repo, error) {
	groups := util.ReGroups(treeURLPattern, url)
	if len(groups) == 0 {
		return Repo{}, fmt.Errorf("invalid GitHub tree URL: %s", url)
	}

	return Repo{
		Owner: groups["owner"],
		Name:  groups["name"],
		Ref:   groups["ref"],
		Path:  groups["path"],
	}, nil
}

// RemoteFile is a downloadable file listed by the GitHub contents API.
type RemoteFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

func getJSON(url, token string, target any) error {
	req, err := network.NewRequest(url, token)
	if err != nil {
		return err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

// LatestCommit resolves the 7-character hash of the most recent commit
// touching the repository path on its ref.
func (r Repo) LatestCommit(token string) (string, error) {
	url := fmt.Sprintf(
		"https://api.github.com/repos/%s/%s/commits?path=%s&sha=%s&per_page=1",
		r.Owner, r.Name, r.Path, r.Ref,
	)

	var commits []struct {
		SHA string `json:"sha"`
	}
	if err := getJSON(url, token, &commits); err != nil {
		return "", err
	}

	if len(commits) == 0 || len(commits[0].SHA) < 7 {
		return "", errors.New("no commits found for path " + r.Path + " on ref " + r.Ref)
	}

	return commits[0].SHA[:7], nil
}

// ListFiles returns the YAML files inside the repository path.
func (r Repo) ListFiles(token string) ([]RemoteFile, error) {
	url := fmt.Sprintf(
		"https://api.github.com/repos/%s/%s/contents/%s?ref=%s",
		r.Owner, r.Name, r.Path, r.Ref,
	)

	var contents []RemoteFile
	if err := getJSON(url, token, &contents); err != nil {
		return nil, err
	}

	var files []RemoteFile
	for _, item := range contents {
		if item.Type == "file" && strings.HasSuffix(item.Name, ".yaml") {
			files = append(files, item)
		}
	}

	return files, nil
}
