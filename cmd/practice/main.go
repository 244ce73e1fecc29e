// Command practice is a terminal client for the practice API.
//
// It signs in (or registers with -register), resumes or generates a passage,
// lets the learner mark the words they do not know, submits them and shows
// the new score.
//
// Environment: PRACTICE_SERVER_URL, PRACTICE_EMAIL, PRACTICE_PASSWORD. A .env
// file in the working directory is loaded first.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/bipbipboopboop/ielts-progressor/internal/client"
	"github.com/bipbipboopboop/ielts-progressor/internal/client/view"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	server := flag.String("server", envOr("PRACTICE_SERVER_URL", "http://localhost:8080"), "API base URL")
	email := flag.String("email", os.Getenv("PRACTICE_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("PRACTICE_PASSWORD"), "account password")
	register := flag.Bool("register", false, "register a new account first")
	name := flag.String("name", "", "display name used with -register")
	timeout := flag.Duration("timeout", 90*time.Second, "per-request timeout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := &terminal{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
		api: client.New(*server, *timeout),
	}

	if err := t.run(ctx, *email, *password, *name, *register); err != nil {
		fmt.Fprintf(os.Stderr, "practice: %v\n", err)
		os.Exit(1)
	}
}

type terminal struct {
	in  *bufio.Scanner
	out io.Writer
	api *client.Client
}

func (t *terminal) run(ctx context.Context, email, password, name string, register bool) error {
	// Step 1: Login view
	login := view.NewLogin(t.api)
	var err error
	if register {
		err = login.SignUp(ctx, email, password, name)
	} else {
		err = login.SignIn(ctx, email, password)
	}
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	fmt.Fprintf(t.out, "Signed in as %s\n\n", displayName(login.Identity()))

	// Step 2: Practice view
	attemptID, err := t.practice(ctx)
	if err != nil || attemptID == "" {
		return err
	}

	// Step 3: Results view
	return t.results(ctx, attemptID)
}

func (t *terminal) practice(ctx context.Context) (string, error) {
	v := view.NewPractice(t.api)
	if err := v.Mount(ctx); err != nil {
		return "", fmt.Errorf("load practice: %w", err)
	}

	if v.State() == view.PracticeNoAttempt {
		fmt.Fprintln(t.out, "Generating a passage at your level...")
		if err := v.Generate(ctx); err != nil {
			return "", fmt.Errorf("generate passage: %w", err)
		}
	}

	fmt.Fprintf(t.out, "Band %s passage. Mark the words you do not know.\n", domain.FormatScore(v.Attempt().Score))
	fmt.Fprintln(t.out, "Commands: <n> [n...] toggle words, s submit, q quit")

	for {
		t.render(v)

		fmt.Fprint(t.out, "> ")
		if !t.in.Scan() {
			return "", t.in.Err()
		}
		line := strings.TrimSpace(t.in.Text())

		switch line {
		case "":
			continue
		case "q":
			return "", nil
		case "s":
			if err := v.Submit(ctx); err != nil {
				fmt.Fprintf(t.out, "Submit failed: %v\n", err)
				continue
			}
			return v.Attempt().ID, nil
		}

		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil || v.Toggle(n-1) != nil {
				fmt.Fprintf(t.out, "Ignoring %q\n", field)
			}
		}
	}
}

func (t *terminal) render(v *view.Practice) {
	var b strings.Builder
	for i, tok := range v.Tokens() {
		if v.IsSelected(i) {
			fmt.Fprintf(&b, "[%d:%s] ", i+1, tok)
		} else {
			fmt.Fprintf(&b, "%d:%s ", i+1, tok)
		}
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, strings.TrimSpace(b.String()))
	if sel := v.Selected(); len(sel) > 0 {
		fmt.Fprintf(t.out, "Selected: %s\n", strings.Join(sel, ", "))
	}
}

func (t *terminal) results(ctx context.Context, attemptID string) error {
	v := view.NewResults(t.api)
	if err := v.Load(ctx, attemptID); err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	fmt.Fprintf(t.out, "\nYour IELTS score: %s\n", domain.FormatScore(v.Score()))

	if words := v.UnknownWords(); len(words) > 0 {
		fmt.Fprintln(t.out, "Words you didn't know:")
		for _, w := range words {
			meaning := w.Meaning
			if meaning == "" {
				meaning = "(no definition found)"
			}
			fmt.Fprintf(t.out, "  %s: %s\n", w.Word, meaning)
		}
	}

	if history := v.History(); len(history) > 1 {
		fmt.Fprintln(t.out, "Recent scores:")
		for _, a := range history {
			fmt.Fprintf(t.out, "  %s  %s\n", time.UnixMilli(a.CreatedAt).Format(time.DateOnly), domain.FormatScore(a.Score))
		}
	}
	return nil
}

func displayName(id *client.Identity) string {
	if id == nil {
		return "unknown"
	}
	if id.DisplayName != "" {
		return id.DisplayName
	}
	return id.Email
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
