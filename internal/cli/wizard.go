package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/blueprint/internal/cli/formatter"
	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// blueprintHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func blueprintHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var wizardCancelKey = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel"))

// Option labels double as the values the gap parsers understand.
var (
	timelineChoices = []string{"ASAP (1-2 months)", "Standard (3-4 months)", "Flexible (5+ months)", "Long-term (6+ months)"}
	teamChoices     = []string{"Just me", "2-3 people", "3-5 people", "5+ people"}
)

// planWizard is a bubbletea model driving a huh form that fills planInputs.
// Answers are staged in string fields and copied over by apply.
type planWizard struct {
	in   *planInputs
	form *huh.Form

	route       string
	complexity  string
	description string
	features    []string
	budget      string
	timeline    string
	teamSize    string

	cancelled bool
}

func newPlanWizard(in *planInputs, catalog []domain.CatalogFeature) *planWizard {
	w := &planWizard{
		in:          in,
		route:       string(in.route),
		complexity:  string(in.complexity),
		description: in.description,
		features:    append([]string(nil), in.features...),
		budget:      in.budget,
		timeline:    in.timeline,
		teamSize:    in.teamSize,
	}
	if w.timeline == "" {
		w.timeline = timelineChoices[1]
	}
	if w.teamSize == "" {
		w.teamSize = teamChoices[0]
	}

	featureOpts := make([]huh.Option[string], 0, len(catalog))
	for _, f := range catalog {
		featureOpts = append(featureOpts, huh.NewOption(f.Label, f.ID))
	}

	w.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What are you building?").
				Placeholder("a marketplace where dog owners book local walkers").
				Value(&w.description),
			huh.NewSelect[string]().
				Title("Build route").
				Options(
					huh.NewOption("No-code platform", string(domain.RouteNoCode)),
					huh.NewOption("Hybrid (no-code + custom code)", string(domain.RouteHybrid)),
					huh.NewOption("Fully custom code", string(domain.RouteCustom)),
				).
				Value(&w.route),
			huh.NewSelect[string]().
				Title("Complexity").
				Options(huh.NewOptions(string(domain.ComplexityLow), string(domain.ComplexityMedium), string(domain.ComplexityHigh))...).
				Value(&w.complexity),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Features").
				Description("Space to toggle, enter to continue").
				Options(featureOpts...).
				Height(12).
				Value(&w.features).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return errors.New("pick at least one feature")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Budget").
				Placeholder("$10,000 - $20,000").
				Value(&w.budget),
			huh.NewSelect[string]().
				Title("Timeline").
				Options(huh.NewOptions(timelineChoices...)...).
				Value(&w.timeline),
			huh.NewSelect[string]().
				Title("Team").
				Options(huh.NewOptions(teamChoices...)...).
				Value(&w.teamSize),
		),
	).WithTheme(blueprintHuhTheme()).WithShowHelp(true)

	return w
}

func (w *planWizard) Init() tea.Cmd {
	return w.form.Init()
}

func (w *planWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, wizardCancelKey) {
		w.cancelled = true
		return w, tea.Quit
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	switch w.form.State {
	case huh.StateCompleted:
		return w, tea.Quit
	case huh.StateAborted:
		w.cancelled = true
		return w, tea.Quit
	}
	return w, cmd
}

func (w *planWizard) View() string {
	if w.cancelled || w.form.State != huh.StateNormal {
		return ""
	}
	return w.form.View()
}

// apply copies the collected answers into the plan inputs. The selects only
// offer valid enum values, so parse failures keep the flag value.
func (w *planWizard) apply() {
	if r, err := domain.ParseRoute(w.route); err == nil {
		w.in.route = r
	}
	if c, err := domain.ParseComplexity(w.complexity); err == nil {
		w.in.complexity = c
	}
	w.in.description = strings.TrimSpace(w.description)
	w.in.features = w.features
	w.in.budget = strings.TrimSpace(w.budget)
	w.in.timeline = w.timeline
	w.in.teamSize = w.teamSize
}
