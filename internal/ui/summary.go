// package ui renders the post-run conversion summary for the terminal.
package ui

import (
	"fmt"
	"strings"

	"hipchat2mattermost/internal/convert"
)

// RenderSummary formats a completed run's counts as a styled block.
func RenderSummary(res *convert.Result) string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Conversion complete"))
	b.WriteString("\n")

	line := func(label string, n int) {
		fmt.Fprintf(&b, "%s %d\n", styles.ok.Render(label+":"), n)
	}
	line("Channels", res.Channels)
	line("Users", res.Users)
	line("Emojis", res.Emojis)
	line("Posts", res.Posts)
	line("Direct channels", res.DirectChannels)
	line("Direct posts", res.DirectPosts)

	skipped := res.SkippedRooms + res.SkippedUsers + res.SkippedMessages + res.SkippedAuthors
	if skipped > 0 {
		b.WriteString(styles.warn.Render(fmt.Sprintf(
			"Skipped: %d rooms, %d users, %d deleted messages, %d unknown-author messages",
			res.SkippedRooms, res.SkippedUsers, res.SkippedMessages, res.SkippedAuthors)))
		b.WriteString("\n")
	}
	if res.ArchivedRooms > 0 {
		b.WriteString(styles.warn.Render(fmt.Sprintf(
			"%d archived rooms imported as non-archived", res.ArchivedRooms)))
		b.WriteString("\n")
	}

	b.WriteString(styles.help.Render(fmt.Sprintf("Document: %s (run %s)", res.DocumentPath, res.RunID)))
	b.WriteString("\n")
	return b.String()
}
