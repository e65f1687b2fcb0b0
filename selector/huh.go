package selector

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	_          Chooser = (*HuhChooser)(nil)
	titleStyle         = lipgloss.NewStyle().Bold(true)
)

// HuhChooser renders prompts with huh forms. Forms and the confirmed
// selections are written to output, leaving stdout to the caller.
type HuhChooser struct {
	theme  *huh.Theme
	output io.Writer
}

func NewHuhChooser(theme *huh.Theme, output io.Writer) *HuhChooser {
	return &HuhChooser{theme: theme, output: output}
}

func (c *HuhChooser) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options to select a %s from", strings.ToLower(title))
	}

	var selected int
	if len(options) == 1 {
		log.Printf("Pre-selecting the only available %s", strings.ToLower(title))
	} else {
		huhOptions := make([]huh.Option[int], len(options))
		for i, option := range options {
			huhOptions[i] = huh.NewOption(option, i)
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title(title).
					Options(huhOptions...).
					Value(&selected).
					WithHeight(10),
			),
		)
		if err := c.run(title, form); err != nil {
			return 0, err
		}
	}

	if selected >= 0 && selected < len(options) {
		c.echo(title, options[selected])
	}
	return selected, nil
}

func (c *HuhChooser) Input(title string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value),
		),
	)
	if err := c.run(title, form); err != nil {
		return "", err
	}

	c.echo(title, value)
	return value, nil
}

func (c *HuhChooser) run(title string, form *huh.Form) error {
	err := form.WithTheme(c.theme).WithOutput(c.output).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("%w: %s", ErrPromptAborted, strings.ToLower(title))
	}
	return err
}

func (c *HuhChooser) echo(title string, value string) {
	fmt.Fprintf(c.output, "%s %s\n", titleStyle.Render(title+":"), value)
}
