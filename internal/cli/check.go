package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var checkJobs int

var errCheckFailed = errors.New("fixtures failed to convert")

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Convert every recorded reply in a directory",
	Long: `Convert each <method>.json file in <dir> with the records of --server-version
and report the ones that fail. Files are converted concurrently, at most --jobs
at a time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := checkDir(args[0], checkJobs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, r := range results {
			if r.err == nil {
				fmt.Fprintf(out, "ok    %s\n", r.name)
				continue
			}
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", r.name, r.err)
		}
		fmt.Fprintf(out, "%d fixtures, %d failed\n", len(results), failed)
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(results))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", runtime.NumCPU(), "fixtures converted in parallel")
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	name string
	err  error
}

// checkDir converts the fixtures of dir and returns one result per file, sorted
// by file name. Only I/O errors abort the run.
func checkDir(dir string, jobs int) ([]checkResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(paths)

	results := make([]checkResult, len(paths))
	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			name := filepath.Base(path)
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			_, convErr := convertReply(strings.TrimSuffix(name, ".json"), raw)
			if convErr != nil {
				logger.Warn("fixture failed", zap.String("file", name), zap.Error(convErr))
			}
			results[i] = checkResult{name: name, err: convErr}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
