// Command review runs an interactive review session in the terminal. It
// loads the owner's due items, shows each prompt, reveals the answer on
// Enter and records the self-graded outcome. Missed items come back once
// at the end of the same session.
//
// Flags:
//
//	--owner  owner UUID whose items to review (required)
//	--mode   vocab, grammar or both (default: both)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/contextlink"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/grammar"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/reviewevent"
	"github.com/kotobachat/kotoba-backend/internal/adapter/postgres/vocab"
	"github.com/kotobachat/kotoba-backend/internal/app"
	"github.com/kotobachat/kotoba-backend/internal/config"
	"github.com/kotobachat/kotoba-backend/internal/domain"
	"github.com/kotobachat/kotoba-backend/internal/service/review"
)

func main() {
	ownerFlag := flag.String("owner", "", "owner UUID whose items to review")
	modeFlag := flag.String("mode", "both", "vocab, grammar or both")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ownerID, err := uuid.Parse(*ownerFlag)
	if err != nil {
		logger.Error("invalid --owner", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mode := domain.ReviewMode(*modeFlag)
	if !mode.IsValid() {
		logger.Error("invalid --mode", slog.String("mode", *modeFlag))
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := review.NewService(
		logger,
		vocab.New(pool),
		grammar.New(pool),
		reviewevent.New(pool),
		contextlink.New(pool),
		postgres.NewTxManager(pool),
		cfg.Review,
	)

	session, err := svc.StartSession(ctx, ownerID, mode)
	if err != nil {
		logger.Error("start session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if session.State() == domain.SessionStateDone {
		fmt.Println("Nothing due right now.")
		return
	}

	if err := runLoop(ctx, svc, session); err != nil {
		logger.Error("session aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("\nSession complete: %d reviews.\n", session.Reviewed())
	if d := session.TimeUntilNextDue(time.Now()); d != nil {
		fmt.Printf("Next item due in %s.\n", d.Round(time.Minute))
	}
}

func runLoop(ctx context.Context, svc *review.Service, session *review.Session) error {
	in := bufio.NewReader(os.Stdin)

	for session.State() == domain.SessionStateActive {
		item := session.Current()

		fmt.Printf("\n[%d left] %s\n", session.Remaining(), prompt(item))
		fmt.Print("(Enter to reveal) ")
		if _, err := in.ReadString('\n'); err != nil {
			return err
		}

		fmt.Println(answer(item))
		printContexts(ctx, svc, item)

		correct, err := askOutcome(in)
		if err != nil {
			return err
		}

		if _, err := session.Answer(ctx, correct); err != nil {
			// The queue is untouched on a failed persist, so the same
			// item is offered again on the next loop iteration.
			fmt.Printf("could not record review: %v (retrying item)\n", err)
		}
	}

	return nil
}

func askOutcome(in *bufio.Reader) (bool, error) {
	for {
		fmt.Print("Did you get it right? [y/n] ")
		line, err := in.ReadString('\n')
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

const maxContextsShown = 3

// printContexts shows the most recent story sentences the item appeared in.
// Lookup failures are non-fatal; the session continues without them.
func printContexts(ctx context.Context, svc *review.Service, item domain.LearningItem) {
	links, err := svc.ItemContexts(ctx, item.Owner(), item.Type(), item.Key())
	if err != nil || len(links) == 0 {
		return
	}
	if len(links) > maxContextsShown {
		links = links[:maxContextsShown]
	}
	fmt.Println("Seen in:")
	for _, l := range links {
		fmt.Printf("  %s\n", l.ExampleSentence)
	}
}

func prompt(item domain.LearningItem) string {
	switch it := item.(type) {
	case *domain.Vocabulary:
		return it.Word
	case *domain.GrammarPoint:
		return it.GrammarPoint
	default:
		return item.Key()
	}
}

func answer(item domain.LearningItem) string {
	switch it := item.(type) {
	case *domain.Vocabulary:
		return fmt.Sprintf("%s — %s", it.Reading, it.Meaning)
	case *domain.GrammarPoint:
		return it.Explanation
	default:
		return ""
	}
}
