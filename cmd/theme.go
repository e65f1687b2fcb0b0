package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
)

const defaultThemeName = "charm"

var (
	themes = map[string]func() *huh.Theme{
		"base":       huh.ThemeBase,
		"base16":     huh.ThemeBase16,
		"catppuccin": huh.ThemeCatppuccin,
		"charm":      huh.ThemeCharm,
		"dracula":    huh.ThemeDracula,
	}
	themeNames []string
)

func init() {
	for name := range themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)
}

func themeByName(name string) (*huh.Theme, error) {
	if themeFunc, ok := themes[name]; ok {
		return themeFunc(), nil
	}
	return nil, fmt.Errorf(
		"unsupported theme '%s' expecting one of: %s",
		name,
		strings.Join(themeNames, " "),
	)
}
