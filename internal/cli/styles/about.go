package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/readably/internal/domain/build"
)

// AboutRenderer renders build details for the version command.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render lists the build fields under a title line.
func (r *AboutRenderer) Render(info build.Info) string {
	t := r.theme
	fields := []struct{ icon, label, value string }{
		{IconVersion, "version", info.Version},
		{IconGitBranch, "commit", info.Commit},
		{IconCalendar, "built", info.BuildDate},
		{IconGo, "go", info.GoVersion},
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}

	lines := []string{t.Title.Render(IconEye + "  readably"), ""}
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			t.Highlight.Render(f.icon),
			t.Subtle.Render(fmt.Sprintf("%-*s", width, f.label)),
			t.Normal.Render(f.value)))
	}
	lines = append(lines, "", t.Subtle.Render(IconGithub+"  "+build.RepoURL))

	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(lines, "\n"))
}
