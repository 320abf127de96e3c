package slack

import (
	"testing"
	"time"

	"github.com/slack-go/slack"
)

func message(typ, user, username, ts, text string) slack.Message {
	return slack.Message{Msg: slack.Msg{
		Type:      typ,
		User:      user,
		Username:  username,
		Timestamp: ts,
		Text:      text,
	}}
}

func TestTranscript_ChronologicalOrder(t *testing.T) {
	dir := newDirectory(nil, []slack.User{{ID: "U1", Name: "alice"}})
	tr := newTranscript(dir, time.UTC)

	tr.AddPage([]slack.Message{
		message("message", "U1", "", "3.0", "hi"),
		message("message", "U1", "", "2.0", "yo"),
	})

	want := "\nalice:1970-01-01 00:00:02\nyo\n\nalice:1970-01-01 00:00:03\nhi\n"
	if got := tr.String(); got != want {
		t.Errorf("transcript:\ngot  %q\nwant %q", got, want)
	}
	if tr.Len() != 2 {
		t.Errorf("Len: got %d, want 2", tr.Len())
	}
}

func TestTranscript_AuthorResolution(t *testing.T) {
	dir := newDirectory(nil, []slack.User{{ID: "U1", Name: "alice"}})

	tests := []struct {
		name string
		msg  slack.Message
		want string
	}{
		{
			name: "known user",
			msg:  message("message", "U1", "", "10", "a"),
			want: "\nalice:1970-01-01 00:00:10\na\n",
		},
		{
			name: "unknown user falls back to username",
			msg:  message("message", "U9", "deploybot", "10", "b"),
			want: "\ndeploybot:1970-01-01 00:00:10\nb\n",
		},
		{
			name: "bot message without user id",
			msg:  message("message", "", "alerts", "10", "c"),
			want: "\nalerts:1970-01-01 00:00:10\nc\n",
		},
		{
			name: "no author is skipped",
			msg:  message("message", "U9", "", "10", "d"),
			want: "",
		},
		{
			name: "non-message type is skipped",
			msg:  message("channel_marked", "U1", "", "10", "e"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTranscript(dir, time.UTC)
			tr.AddPage([]slack.Message{tt.msg})
			if got := tr.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranscript_SkippedMessageDoesNotStopLaterOnes(t *testing.T) {
	dir := newDirectory(nil, []slack.User{{ID: "U1", Name: "alice"}})
	tr := newTranscript(dir, time.UTC)

	tr.AddPage([]slack.Message{
		message("message", "U1", "", "3", "after"),
		message("message", "U404", "", "2", "orphan"),
		message("message", "U1", "", "1", "before"),
	})

	want := "\nalice:1970-01-01 00:00:01\nbefore\n\nalice:1970-01-01 00:00:03\nafter\n"
	if got := tr.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranscript_EmptyDirectory(t *testing.T) {
	tr := newTranscript(newDirectory(nil, nil), time.UTC)
	tr.AddPage([]slack.Message{message("message", "U1", "", "1", "x")})
	if tr.String() != "" {
		t.Errorf("expected empty transcript, got %q", tr.String())
	}
}

func TestFormatTimestamp(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		ts   string
		loc  *time.Location
		want string
	}{
		{"1700000000.000000", time.UTC, "2023-11-14 22:13:20"},
		{"1700000000.123456", time.UTC, "2023-11-14 22:13:20.123456"},
		{"1700000000.5", time.UTC, "2023-11-14 22:13:20.500000"},
		{"1700000000", time.UTC, "2023-11-14 22:13:20"},
		{"1700000000.000100", jst, "2023-11-15 07:13:20.000100"},
		{"not-a-ts", time.UTC, "not-a-ts"},
	}

	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			if got := formatTimestamp(tt.ts, tt.loc); got != tt.want {
				t.Errorf("formatTimestamp(%q): got %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}
