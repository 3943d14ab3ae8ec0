package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	components "github.com/UnderscoreTud/ComponentsLibrary"
)

// sample builds a tree exercising inheritance: the root colour and
// bold flow into the first child, the hex colour overrides on the
// second, and the keybind child picks everything up from the root.
func sample() components.Component {
	teal := components.RGB(0x1a, 0x2b, 0x3c)

	root := components.NewText("deploy ").
		WithColor(components.Red).
		WithBold(true).
		WithInsertion("/deploy")
	root.SetClickEvent(components.NewClickEvent(components.RunCommand, "/deploy"))
	root.SetHoverEvent(components.ShowTextEvent(components.NewText("runs the deploy pipeline")))

	root.AppendText("finished ")
	root.Append(components.NewText("in 12s ").WithColor(teal).WithBold(false).WithItalic(true))
	root.Append(components.NewTranslation("deploy.retry.hint", components.NewText("staging")))
	root.Append(components.NewKeybind("key.retry"))
	return root
}

type model struct {
	component components.Component
	view      int
}

var viewNames = []string{"ansi", "legacy", "json"}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", " ":
			m.view = (m.view + 1) % len(viewNames)
		case "shift+tab", "left":
			m.view = (m.view + len(viewNames) - 1) % len(viewNames)
		}
	}
	return m, nil
}

func (m model) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("component preview")
	tabs := ""
	for i, name := range viewNames {
		if i == m.view {
			tabs += lipgloss.NewStyle().Underline(true).Render(name)
		} else {
			tabs += name
		}
		tabs += "  "
	}

	var body string
	switch m.view {
	case 0:
		body = components.RenderANSI(m.component)
	case 1:
		body = components.LegacyString(m.component)
	case 2:
		data, err := components.Marshal(m.component)
		if err != nil {
			body = err.Error()
		} else {
			body = string(data)
		}
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\ntab: switch view  q: quit\n", header, tabs, body)
}

func main() {
	c := sample()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// Piped output: dump every view and exit.
		fmt.Println(components.RenderANSI(c))
		fmt.Println(components.LegacyString(c))
		data, err := components.Marshal(c)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if _, err := tea.NewProgram(model{component: c}).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
