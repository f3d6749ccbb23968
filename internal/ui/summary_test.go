package ui

import (
	"strings"
	"testing"

	"hipchat2mattermost/internal/convert"
)

func TestRenderSummary(t *testing.T) {
	res := &convert.Result{
		RunID:          "run-1",
		DocumentPath:   "out/hipchat-export.json",
		Channels:       3,
		Users:          12,
		Emojis:         1,
		Posts:          240,
		DirectChannels: 4,
		DirectPosts:    80,
		SkippedRooms:   1,
		ArchivedRooms:  2,
	}

	out := RenderSummary(res)

	for _, want := range []string{
		"Conversion complete",
		"Channels",
		"240",
		"out/hipchat-export.json",
		"run-1",
		"archived rooms imported as non-archived",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	t.Run("no skip block when nothing skipped", func(t *testing.T) {
		out := RenderSummary(&convert.Result{RunID: "run-2", DocumentPath: "out/doc.json"})
		if strings.Contains(out, "Skipped") {
			t.Errorf("clean run should not mention skips:\n%s", out)
		}
	})
}
