package bot

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tourguide/internal/llm"
)

func TestChat_QuitEndsTheLoop(t *testing.T) {
	b := New(&fakeRetriever{}, &fakeGenerator{answer: "The fort is open all day."}, 3, 3)

	in := strings.NewReader("When is the fort open?\nquit\n")
	var out bytes.Buffer

	if err := b.Chat(context.Background(), in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "The fort is open all day.") {
		t.Fatalf("expected the answer in output:\n%s", got)
	}
	if !strings.Contains(got, "Goodbye") {
		t.Fatalf("expected the farewell in output:\n%s", got)
	}
}

func TestChat_ExitAliases(t *testing.T) {
	for _, cmd := range []string{"quit", "exit", "bye", "QUIT"} {
		b := New(&fakeRetriever{}, &fakeGenerator{answer: "ok"}, 3, 3)
		in := strings.NewReader(cmd + "\n")
		var out bytes.Buffer

		if err := b.Chat(context.Background(), in, &out); err != nil {
			t.Fatalf("%q: unexpected error: %v", cmd, err)
		}
	}
}

func TestChat_ClearResetsHistory(t *testing.T) {
	b := New(&fakeRetriever{}, &fakeGenerator{answer: "ok"}, 3, 3)

	in := strings.NewReader("remember this\nclear\nquit\n")
	var out bytes.Buffer

	if err := b.Chat(context.Background(), in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Starting fresh") {
		t.Fatalf("expected the clear acknowledgement:\n%s", out.String())
	}
	if len(b.History()) != 0 {
		t.Fatalf("expected history cleared")
	}
}

// errorOnceGenerator fails the first call and succeeds afterwards, to prove
// the loop survives a failed turn.
type errorOnceGenerator struct {
	calls int
}

func (g *errorOnceGenerator) Generate(_ context.Context, _ []llm.Message) (string, error) {
	g.calls++
	if g.calls == 1 {
		return "", errors.New("api unreachable")
	}
	return "recovered", nil
}

func TestChat_TurnErrorIsReportedAndLoopContinues(t *testing.T) {
	b := New(&fakeRetriever{}, &errorOnceGenerator{}, 3, 3)

	in := strings.NewReader("first question\nsecond question\nquit\n")
	var out bytes.Buffer

	if err := b.Chat(context.Background(), in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Sorry, I ran into a problem") {
		t.Fatalf("expected the turn error reported:\n%s", got)
	}
	if !strings.Contains(got, "recovered") {
		t.Fatalf("expected the loop to continue after the error:\n%s", got)
	}
}

func TestChat_BlankLinesAreIgnored(t *testing.T) {
	g := &fakeGenerator{answer: "ok"}
	b := New(&fakeRetriever{}, g, 3, 3)

	in := strings.NewReader("\n   \nquit\n")
	var out bytes.Buffer

	if err := b.Chat(context.Background(), in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.calls) != 0 {
		t.Fatalf("expected no generation for blank input, got %d calls", len(g.calls))
	}
}

func TestChat_EOFEndsTheLoop(t *testing.T) {
	b := New(&fakeRetriever{}, &fakeGenerator{answer: "ok"}, 3, 3)

	in := strings.NewReader("a question without a quit")
	var out bytes.Buffer

	if err := b.Chat(context.Background(), in, &out); err != nil {
		t.Fatalf("expected EOF to end the loop cleanly, got %v", err)
	}
}

func TestChat_CancelledContextEndsTheLoop(t *testing.T) {
	b := New(&fakeRetriever{}, &fakeGenerator{answer: "ok"}, 3, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := strings.NewReader("never read\n")
	var out bytes.Buffer

	if err := b.Chat(ctx, in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
