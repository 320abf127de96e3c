package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// messageType is the only event type rendered
const messageType = "message"

// transcript accumulates formatted messages in chronological order
type transcript struct {
	dir *directory
	loc *time.Location
	sb  strings.Builder
	n   int
}

func newTranscript(dir *directory, loc *time.Location) *transcript {
	if loc == nil {
		loc = time.Local
	}
	return &transcript{dir: dir, loc: loc}
}

// AddPage appends a newest-first page oldest-first
func (t *transcript) AddPage(page []slack.Message) {
	for i := len(page) - 1; i >= 0; i-- {
		t.add(page[i])
	}
}

func (t *transcript) add(msg slack.Message) {
	if msg.Type != messageType {
		return
	}
	name, ok := t.authorName(msg)
	if !ok {
		return
	}
	fmt.Fprintf(&t.sb, "\n%s:%s\n%s\n", name, formatTimestamp(msg.Timestamp, t.loc), msg.Text)
	t.n++
}

// authorName resolves the directory name of the author, falling back to the
// literal username carried by bot messages
func (t *transcript) authorName(msg slack.Message) (string, bool) {
	if msg.User != "" {
		if u, err := t.dir.lookupUserByID(msg.User); err == nil {
			return u.Name, true
		}
	}
	if msg.Username != "" {
		return msg.Username, true
	}
	return "", false
}

// Len returns the number of rendered messages
func (t *transcript) Len() int {
	return t.n
}

func (t *transcript) String() string {
	return t.sb.String()
}

// formatTimestamp renders a Slack timestamp as local wall-clock time. The
// microsecond part is only shown when it is non-zero.
func formatTimestamp(ts string, loc *time.Location) string {
	secs, frac, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return ts
	}
	var usec int64
	if frac != "" {
		frac = (frac + "000000")[:6]
		usec, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return ts
		}
	}

	t := time.Unix(sec, usec*int64(time.Microsecond)).In(loc)
	out := t.Format("2006-01-02 15:04:05")
	if usec != 0 {
		out += fmt.Sprintf(".%06d", usec)
	}
	return out
}
