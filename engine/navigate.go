package engine

import (
	"sort"
	"strings"

	"github.com/dotree-sh/dotree/dtree"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

type outcome int

const (
	// pending: the buffer is a proper prefix of at least one key.
	pending outcome = iota
	// invalid: no key has the buffer as a prefix.
	invalid
	// descend: the buffer names a submenu entry.
	descend
	// fire: the buffer names a command entry.
	fire
)

// match classifies the typed buffer against one menu. An entry fires
// only on its full key; the prefix-freedom invariant enforced at
// build time makes an exact match unambiguous.
func match(menu *dtree.Menu, buffer string) (outcome, dtree.Entry) {
	if entry, ok := menu.Entries[buffer]; ok {
		if _, submenu := entry.(*dtree.SubMenu); submenu {
			return descend, entry
		}
		return fire, entry
	}
	for _, key := range menu.Keys {
		if strings.HasPrefix(key, buffer) {
			return pending, nil
		}
	}
	return invalid, nil
}

// suggestion fuzzy-matches the rejected buffer against the menu's
// keys for a "did you mean" hint.
func suggestion(menu *dtree.Menu, buffer string) string {
	ranks := fuzzy.RankFindFold(buffer, menu.Keys)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// VisibleEntry is one row of a menu listing: the key to type and the
// label to show next to it.
type VisibleEntry struct {
	Key   string
	Label string
}

// Visible projects a menu into its ordered entry listing for a
// rendering collaborator.
func (it *Session) Visible(menu *dtree.Menu) []VisibleEntry {
	entries := make([]VisibleEntry, 0, len(menu.Keys))
	for _, key := range menu.Keys {
		entries = append(entries, VisibleEntry{Key: key, Label: it.Config.Label(menu.Entries[key])})
	}
	return entries
}
