package docs

import (
	"embed"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/style"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewCommand creates the docs command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgShort,
		Long:      MsgLong,
		Example:   MsgExample,
		ValidArgs: topicNames(),
		Args:      cobra.MaximumNArgs(1),
		RunE:      execute,
	}
}

func execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cmd.Println("Available topics:")
		for _, name := range topicNames() {
			cmd.Printf("  %s\n", name)
		}
		return nil
	}

	content, err := topicsFS.ReadFile("topics/" + args[0] + ".md")
	if err != nil {
		return errors.Newf(errors.ErrInvalidInput, "unknown topic %q", args[0])
	}

	cmd.Print(render(string(content)))
	return nil
}

// render converts markdown to terminal output, falling back to the raw text
// when the terminal cannot display it or rendering fails.
func render(content string) string {
	if !style.IsTerminal() {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func topicNames() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}
