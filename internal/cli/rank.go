package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/hr-helper/internal/config"
	"alfredoptarigan/hr-helper/internal/metrics"
	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/repositories"
	"alfredoptarigan/hr-helper/internal/services"
)

var ErrNoDocuments = errors.New("no PDF documents found")

type rankOptions struct {
	rubricFile  string
	json        bool
	watch       bool
	concurrency int
}

func newRankCmd() *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank <dir|file.pdf>...",
		Short: "Extract, score and rank every CV PDF",
		Long: `rank reads every PDF named on the command line, or found directly
inside a named directory, and prints candidates ordered by final score.
With --watch the ranking is printed again whenever the rubric file changes.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch && opts.rubricFile == "" && getConfigFromContext(cmd.Context()).Rubric.File == "" {
				return errors.New("--watch requires --rubric")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rubricFile, "rubric", "r", "", "rubric file (yaml, json or toml); defaults to the built-in rubric")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the ranking as JSON")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-rank whenever the rubric file changes")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", -1, "extraction workers; 0 uses every CPU (default from WORKER_CONCURRENCY)")

	return cmd
}

func runRank(cmd *cobra.Command, args []string, opts *rankOptions) error {
	cfg := getConfigFromContext(cmd.Context())
	if opts.concurrency >= 0 {
		cfg.Worker.Concurrency = opts.concurrency
	}
	if opts.rubricFile != "" {
		cfg.Rubric.File = opts.rubricFile
	}

	zl, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer zl.Sync()

	form := models.DefaultRubricForm()
	var rubric *viper.Viper
	if cfg.Rubric.File != "" {
		rubric = config.NewRubricViper(cfg.Rubric.File)
		if form, err = config.LoadRubric(rubric); err != nil {
			return err
		}
	}

	docs, err := collectDocuments(args)
	if err != nil {
		return err
	}
	zl.Debug("documents collected", zap.Int("count", len(docs)))

	session, err := newSession(cfg, form, zl)
	if err != nil {
		return err
	}
	if _, err := session.Ingest(docs); err != nil {
		return fmt.Errorf("failed to ingest documents: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := printRanking(out, session, opts.json); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	config.WatchRubric(rubric,
		func(updated models.RubricForm) {
			if err := session.UpdateRubric(updated); err != nil {
				zl.Error("failed to apply rubric", zap.Error(err))
				return
			}
			if err := printRanking(out, session, opts.json); err != nil {
				zl.Error("failed to print ranking", zap.Error(err))
			}
		},
		func(err error) {
			zl.Warn("rubric change rejected", zap.Error(err))
		},
	)
	zl.Info("watching rubric file", zap.String("file", cfg.Rubric.File))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

func newSession(cfg *config.Config, form models.RubricForm, zl *zap.Logger) (*services.Session, error) {
	db, err := config.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}

	m := metrics.NewNop()
	builder := services.NewCandidateBuilder(services.NewPDFParserService())
	runner := services.NewBatchRunner(builder, cfg.Worker.Concurrency, zl, m)

	return services.NewSession(
		repositories.NewCandidateRepository(db),
		runner,
		services.NewReportService(),
		form,
		zl,
		m,
	)
}

// collectDocuments loads every named PDF plus the PDFs directly inside every
// named directory. The cleaned path is the document ID, so a file named
// twice is read once.
func collectDocuments(paths []string) ([]models.Document, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() || !isPDF(e.Name()) {
				continue
			}
			found = append(found, filepath.Join(p, e.Name()))
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	seen := make(map[string]struct{}, len(files))
	docs := make([]models.Document, 0, len(files))
	for _, f := range files {
		id := filepath.Clean(f)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		content, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, models.Document{
			ID:      id,
			Name:    filepath.Base(f),
			Content: content,
		})
	}

	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs, nil
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

func printRanking(w io.Writer, session *services.Session, asJSON bool) error {
	ranking, err := session.Ranking()
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ranking)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tNAME\tSCORE\tRECOMMENDATION\n")
	for i, c := range ranking {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, c.Name, c.Score, c.Recommendation)
	}
	return tw.Flush()
}
