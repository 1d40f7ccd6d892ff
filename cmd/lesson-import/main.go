// Command lesson-import parses saved lesson transcripts and persists the
// vocabulary and grammar they teach. It reads one lesson from a file (or
// stdin), or every *.md / *.txt file in a directory, runs the extractor
// over each and hands the surviving candidates to the ingest service.
//
// Flags:
//
//	--file        path to a single lesson text (default: stdin)
//	--dir         directory of lesson files; overrides --file
//	--owner       owner UUID the items belong to (required)
//	--context-id  source context UUID (default: one fresh UUID per lesson)
//	--dry-run     extract and report only, write nothing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/contextlink"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/grammar"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/reviewevent"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/vocab"
	"github.com/kotobachat/kotoba-backend/internal/app"
	"github.com/kotobachat/kotoba-backend/internal/config"
	"github.com/kotobachat/kotoba-backend/internal/extractor"
	"github.com/kotobachat/kotoba-backend/internal/furigana"
	"github.com/kotobachat/kotoba-backend/internal/service/ingest"
)

func main() {
	filePath := flag.String("file", "", "path to a single lesson text (default: stdin)")
	dirPath := flag.String("dir", "", "directory of lesson files; overrides --file")
	ownerFlag := flag.String("owner", "", "owner UUID the items belong to")
	contextFlag := flag.String("context-id", "", "source context UUID (default: fresh per lesson)")
	dryRun := flag.Bool("dry-run", false, "extract and report only, write nothing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting lesson import", slog.String("version", app.BuildVersion()))

	ownerID, err := uuid.Parse(*ownerFlag)
	if err != nil {
		logger.Error("invalid --owner", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var contextID uuid.UUID
	if *contextFlag != "" {
		contextID, err = uuid.Parse(*contextFlag)
		if err != nil {
			logger.Error("invalid --context-id", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	lessons, err := collectLessons(*filePath, *dirPath)
	if err != nil {
		logger.Error("read lessons", slog.String("error", err.Error()))
		os.Exit(1)
	}

	annotator, err := furigana.New()
	if err != nil {
		logger.Error("init reading annotator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	ext := extractor.New(logger, annotator)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var svc *ingest.Service
	if !*dryRun {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		svc = ingest.NewService(
			logger,
			vocab.New(pool),
			grammar.New(pool),
			contextlink.New(pool),
			reviewevent.New(pool),
			postgres.NewTxManager(pool),
			cfg.Ingest,
		)
	}

	for _, l := range lessons {
		bundle, warnings := ext.Extract(l.text)
		for _, w := range warnings {
			logger.Warn("extraction warning",
				slog.String("source", l.name),
				slog.String("reason", w.Reason),
				slog.String("line", w.Line),
			)
		}

		if *dryRun {
			logger.Info("dry run: lesson extracted",
				slog.String("source", l.name),
				slog.String("title", bundle.Title),
				slog.Int("vocab_candidates", len(bundle.Vocabulary)),
				slog.Int("grammar_candidates", len(bundle.Grammar)),
			)
			continue
		}

		// Each lesson gets its own context ID unless one was pinned, so
		// items can be traced back to the conversation they came from.
		sourceContextID := contextID
		if sourceContextID == uuid.Nil {
			sourceContextID = uuid.New()
		}

		report, err := svc.Ingest(ctx, bundle, ownerID, sourceContextID)
		if err != nil {
			logger.Error("ingest failed",
				slog.String("source", l.name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}

		logger.Info("lesson imported",
			slog.String("source", l.name),
			slog.String("title", bundle.Title),
			slog.Int("vocab_added", report.VocabAdded),
			slog.Int("vocab_skipped", report.VocabSkipped),
			slog.Int("grammar_added", report.GrammarAdded),
			slog.Int("grammar_skipped", report.GrammarSkipped),
		)
	}
}

type lesson struct {
	name string
	text string
}

// collectLessons reads the lesson inputs. --dir wins over --file; with
// neither, stdin is the single lesson.
func collectLessons(filePath, dirPath string) ([]lesson, error) {
	if dirPath != "" {
		entries, err := os.ReadDir(dirPath)
		if err != nil {
			return nil, err
		}

		var lessons []lesson
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if ext != ".md" && ext != ".txt" {
				continue
			}
			raw, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
			if err != nil {
				return nil, err
			}
			lessons = append(lessons, lesson{name: entry.Name(), text: string(raw)})
		}
		if len(lessons) == 0 {
			return nil, fmt.Errorf("no .md or .txt lessons in %s", dirPath)
		}
		return lessons, nil
	}

	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		return []lesson{{name: filepath.Base(filePath), text: string(raw)}}, nil
	}

	raw, err := readAllStdin()
	if err != nil {
		return nil, err
	}
	return []lesson{{name: "stdin", text: raw}}, nil
}

func readAllStdin() (string, error) {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
