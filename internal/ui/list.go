package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"tunetutor/internal/tasks"
)

var _ list.Item = artistItem{}

// artistItem wraps [tasks.ArtistCard] to implement [list.Item].
type artistItem struct {
	card tasks.ArtistCard
}

func (i artistItem) FilterValue() string { return i.card.Record.Name }

func (i artistItem) Title() string {
	if i.card.HasImage() {
		return i.card.Record.Name
	}
	return fmt.Sprintf("%s %s", i.card.Placeholder.Icon, i.card.Record.Name)
}

func (i artistItem) Description() string {
	desc := ""
	if i.card.Record.Genre != "" {
		desc = i.card.Record.Genre
	}
	if i.card.Record.Area != "" {
		if desc != "" {
			desc = fmt.Sprintf("%s • %s", desc, i.card.Record.Area)
		} else {
			desc = i.card.Record.Area
		}
	}
	if i.card.Record.ActiveSince != "" {
		desc = fmt.Sprintf("%s • since %s", desc, i.card.Record.ActiveSince)
	}
	if desc == "" {
		desc = i.card.Placeholder.Initials
	}
	return desc
}
