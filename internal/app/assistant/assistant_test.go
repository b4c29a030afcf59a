package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samuel-avson/retrofolio/internal/app/assistant"
)

type fakeCompleter struct {
	reply  string
	err    error
	gotMsg string
}

func (f *fakeCompleter) Complete(_ context.Context, message string) (string, error) {
	f.gotMsg = message
	return f.reply, f.err
}

func TestReply_Success(t *testing.T) {
	fake := &fakeCompleter{reply: "I build embedded tooling and ML systems."}
	a := assistant.New(fake)

	got := a.Reply(context.Background(), "what do you do?")
	if got != fake.reply {
		t.Errorf("got %q, want completer reply", got)
	}
	if fake.gotMsg != "what do you do?" {
		t.Errorf("completer received %q", fake.gotMsg)
	}
}

func TestReply_ErrorFallsBack(t *testing.T) {
	a := assistant.New(&fakeCompleter{err: errors.New("upstream down")})

	got := a.Reply(context.Background(), "hello")
	if got != assistant.OfflineFallback {
		t.Errorf("expected offline fallback, got %q", got)
	}
}

func TestReply_NoBackend(t *testing.T) {
	a := assistant.New(nil)
	if a.Enabled() {
		t.Error("nil completer should report disabled")
	}
	if got := a.Reply(context.Background(), "hi"); got != assistant.OfflineFallback {
		t.Errorf("expected offline fallback, got %q", got)
	}
}

func TestReply_EmptyCases(t *testing.T) {
	a := assistant.New(&fakeCompleter{reply: "   "})
	if got := a.Reply(context.Background(), "question"); got != assistant.OfflineFallback {
		t.Errorf("blank completion should fall back, got %q", got)
	}

	a = assistant.New(&fakeCompleter{reply: "fine"})
	if got := a.Reply(context.Background(), "  "); got != assistant.OfflineFallback {
		t.Errorf("blank question should fall back, got %q", got)
	}
}
