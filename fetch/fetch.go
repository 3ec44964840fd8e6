package fetch

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/huemap-cli/huemap/filesystem"
	"github.com/huemap-cli/huemap/log"
	"github.com/huemap-cli/huemap/network"
	"github.com/huemap-cli/huemap/util"
)

// Options configures one fetch run.
type Options struct {
	// RepoURL is the GitHub tree URL to download scheme files from.
	RepoURL string
	// OutputDir is the base directory; files land in <OutputDir>/<commit>/themes.
	OutputDir string
	// Limit restricts the number of files downloaded when positive.
	Limit int
	// BatchSize bounds concurrent downloads.
	BatchSize int
	// Progress, when set, receives human-readable status lines.
	// Calls are serialized, so the callback may keep non-thread-safe state.
	Progress func(string)
}

// Run fetches the scheme files described by opts. It returns the directory
// files were written to, which may already exist from a prior run at the
// same upstream commit (in which case nothing is downloaded).
func Run(opts Options) (string, error) {
	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}

	repo, err := ParseRepoURL(opts.RepoURL)
	if err != nil {
		return "", err
	}

	token := Token().OrElse("")

	progress("Resolving latest commit...")
	commit, err := repo.LatestCommit(token)
	if err != nil {
		return "", fmt.Errorf("resolve latest commit: %w", err)
	}

	targetDir := filepath.Join(opts.OutputDir, commit, "themes")
	if done, _ := alreadyFetched(targetDir); done {
		progress(fmt.Sprintf("Schemes for commit %s already present, skipping download", commit))
		return targetDir, nil
	}

	progress("Listing scheme files...")
	files, err := repo.ListFiles(token)
	if err != nil {
		return "", fmt.Errorf("list scheme files: %w", err)
	}

	if opts.Limit > 0 && opts.Limit < len(files) {
		files = files[:opts.Limit]
	}

	progress(fmt.Sprintf("Downloading %s at commit %s", util.Quantify(len(files), "scheme", "schemes"), commit))

	if err := download(files, targetDir, opts.BatchSize, token, progress); err != nil {
		return "", err
	}

	return targetDir, nil
}

// alreadyFetched reports whether the target directory exists and holds at least one scheme.
func alreadyFetched(dir string) (bool, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// download pulls files concurrently, bounded by a semaphore of batch slots.
// Individual failures are logged and counted, not fatal: a partial scheme
// set is still useful and the next run retries against the same commit.
func download(files []RemoteFile, dir string, batch int, token string, progress func(string)) error {
	if err := filesystem.API().MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if batch < 1 {
		batch = 1
	}

	var (
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, batch)
		completed atomic.Int64
		failed    atomic.Int64
	)

	// Progress delivery is serialized: the callback contract allows
	// non-thread-safe state on the caller's side.
	var progressMu sync.Mutex
	report := func(msg string) {
		progressMu.Lock()
		defer progressMu.Unlock()
		progress(msg)
	}

	for _, file := range files {
		wg.Add(1)
		go func(file RemoteFile) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := downloadOne(file, dir, token); err != nil {
				failed.Add(1)
				log.Errorf("download %s: %v", file.Name, err)
				return
			}

			done := completed.Add(1)
			report(fmt.Sprintf("Downloaded %d/%d", done, len(files)))
		}(file)
	}

	wg.Wait()

	if n := failed.Load(); n > 0 {
		report(fmt.Sprintf("%s failed to download, see logs", util.Quantify(int(n), "file", "files")))
	}

	return nil
}

func downloadOne(file RemoteFile, dir string, token string) error {
	req, err := network.NewRequest(file.DownloadURL, token)
	if err != nil {
		return err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	// An error reply must never be persisted as a scheme file: once the
	// commit directory is non-empty the whole fetch is skipped on re-runs.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", file.DownloadURL, resp.Status)
	}

	out, err := filesystem.API().Create(filepath.Join(dir, file.Name))
	if err != nil {
		return err
	}
	defer util.Ignore(out.Close)

	_, err = io.Copy(out, resp.Body)
	return err
}
