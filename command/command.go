// Package command renders a selection as an `aws ecs execute-command` line.
package command

import (
	"fmt"

	"github.com/sestrella/ecsr/selector"
	"mvdan.cc/sh/v3/syntax"
)

const (
	cliName           = "aws"
	serviceSubcommand = "ecs"
)

// Synthesize interpolates the selection as is. Values containing whitespace
// or shell metacharacters are not escaped and will be re-tokenized by the
// shell running the line.
func Synthesize(selection selector.Selection) string {
	return render(
		selection.Profile,
		selection.Cluster,
		selection.Container,
		selection.Command,
		selection.Task,
	)
}

// SynthesizeQuoted is like Synthesize but quotes every interpolated value for
// bash. Values that are already safe are left untouched.
func SynthesizeQuoted(selection selector.Selection) (string, error) {
	values := []string{
		selection.Profile,
		selection.Cluster,
		selection.Container,
		selection.Command,
		selection.Task,
	}
	for i, value := range values {
		quoted, err := syntax.Quote(value, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("failed to quote %q: %w", value, err)
		}
		values[i] = quoted
	}

	return render(values[0], values[1], values[2], values[3], values[4]), nil
}

func render(profile, cluster, container, command, task string) string {
	return fmt.Sprintf(
		"%s --profile %s %s execute-command --cluster %s --container %s --interactive --command %s --task %s",
		cliName,
		profile,
		serviceSubcommand,
		cluster,
		container,
		command,
		task,
	)
}
