package slack

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/slack-go/slack"
)

// ErrNotFound is wrapped by every failed directory lookup
var ErrNotFound = errors.New("not found")

// directory is the channel and user snapshot taken at startup. It is never
// written after construction.
type directory struct {
	channelNames map[string]slack.Channel
	channelIDs   map[string]slack.Channel
	userIDs      map[string]slack.User
	userNames    map[string]slack.User
}

func newDirectory(channels []slack.Channel, users []slack.User) *directory {
	d := &directory{
		channelNames: make(map[string]slack.Channel, len(channels)),
		channelIDs:   make(map[string]slack.Channel, len(channels)),
		userIDs:      make(map[string]slack.User, len(users)),
		userNames:    make(map[string]slack.User, len(users)),
	}
	for _, ch := range channels {
		d.channelNames[strings.ToLower(ch.Name)] = ch
		d.channelIDs[ch.ID] = ch
	}
	for _, u := range users {
		d.userIDs[u.ID] = u
		d.userNames[u.Name] = u
	}
	return d
}

// lookupChannelByName finds a channel by name, ignoring a leading '#'
func (d *directory) lookupChannelByName(name string) (slack.Channel, error) {
	key := strings.ToLower(strings.TrimPrefix(name, "#"))
	ch, ok := d.channelNames[key]
	if !ok {
		return slack.Channel{}, fmt.Errorf("channel name %q: %w", name, ErrNotFound)
	}
	return ch, nil
}

func (d *directory) lookupUserByID(id string) (slack.User, error) {
	u, ok := d.userIDs[id]
	if !ok {
		return slack.User{}, fmt.Errorf("user id %q: %w", id, ErrNotFound)
	}
	return u, nil
}

func (d *directory) lookupUserByName(name string) (slack.User, error) {
	u, ok := d.userNames[name]
	if !ok {
		return slack.User{}, fmt.Errorf("user name %q: %w", name, ErrNotFound)
	}
	return u, nil
}

// Channels returns all channels sorted by name
func (d *directory) Channels() []slack.Channel {
	out := make([]slack.Channel, 0, len(d.channelIDs))
	for _, ch := range d.channelIDs {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ChannelCount returns the number of channels in the directory
func (d *directory) ChannelCount() int {
	return len(d.channelIDs)
}

// UserCount returns the number of users in the directory
func (d *directory) UserCount() int {
	return len(d.userIDs)
}
