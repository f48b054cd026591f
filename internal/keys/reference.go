package keys

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sahilm/fuzzy"
)

// Search returns the groups reduced to bindings whose help key or
// description fuzzy-matches query, best match first. An empty query returns
// every group unchanged. Groups left without bindings are dropped.
func Search(groups []Group, query string) []Group {
	query = strings.TrimSpace(query)
	if query == "" {
		return groups
	}

	type entry struct {
		group, binding int
	}
	var (
		entries []entry
		lines   []string
	)
	for gi, g := range groups {
		for bi, b := range g.Bindings {
			entries = append(entries, entry{gi, bi})
			lines = append(lines, b.Help().Key+" "+b.Help().Desc)
		}
	}

	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Title: g.Title, Mode: g.Mode}
	}
	for _, m := range fuzzy.Find(query, lines) {
		e := entries[m.Index]
		out[e.group].Bindings = append(out[e.group].Bindings, groups[e.group].Bindings[e.binding])
	}

	filtered := out[:0]
	for _, g := range out {
		if len(g.Bindings) > 0 {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// Markdown renders groups as a markdown document with one table per group.
func Markdown(groups []Group) string {
	var sb strings.Builder
	sb.WriteString("# viedit keys\n")
	if len(groups) == 0 {
		sb.WriteString("\nNo matching keys.\n")
		return sb.String()
	}
	for _, g := range groups {
		fmt.Fprintf(&sb, "\n## %s (%s)\n\n", g.Title, g.Mode)
		sb.WriteString("| Key | Action |\n|---|---|\n")
		for _, b := range g.Bindings {
			fmt.Fprintf(&sb, "| `%s` | %s |\n", escapeCell(b.Help().Key), b.Help().Desc)
		}
	}
	return sb.String()
}

// Keys returns every key of bindings, in order.
func Keys(bindings []key.Binding) []string {
	var out []string
	for _, b := range bindings {
		out = append(out, b.Keys()...)
	}
	return out
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
