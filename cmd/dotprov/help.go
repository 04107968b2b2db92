package dotprov

import (
	"strings"

	"github.com/arthur-debert/dotprov/pkg/style"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

const helpWrapWidth = 80

// markdownHelp wraps the default help function so that long descriptions
// are rendered as markdown when help goes to a terminal.
func markdownHelp(defaultHelp func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if cmd.Long != "" && style.IsTerminal(cmd.OutOrStdout()) && !termenv.EnvNoColor() {
			cmd.Long = strings.TrimRight(renderMarkdown(cmd.Long, "auto"), "\n")
		}
		defaultHelp(cmd, args)
	}
}

// renderMarkdown renders content with the named glamour style ("auto",
// "dark", "light", "notty" or a style file). The content is returned
// unchanged when rendering fails.
func renderMarkdown(content, styleName string) string {
	var options []glamour.TermRendererOption
	if styleName != "" && styleName != "auto" {
		options = append(options, glamour.WithStylePath(styleName))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	options = append(options, glamour.WithWordWrap(helpWrapWidth))

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
