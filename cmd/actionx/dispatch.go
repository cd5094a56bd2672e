package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/actionx"
)

func (a *app) dispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <manifest> <creator> [args...]",
		Short: "Create an action and print it as JSON",
		Long: "Create an action with the creator at a dotted path such as todo.add.\n" +
			"Arguments are decoded as JSON when they parse, otherwise passed as strings.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			_, creators, err := a.build(args[0])
			if err != nil {
				return a.fail(err)
			}

			path := strings.Split(args[1], ".")
			creator, ok := creators.Creator(path...)
			if !ok {
				return a.fail(fmt.Errorf("no action creator at %q (have: %s)", args[1], strings.Join(creatorPaths(creators), ", ")))
			}

			action := creator.Create(decodeArgs(args[2:])...)
			a.log.Debug("action created", "type", action.Type, "args", len(args)-2)

			data, err := json.Marshal(action)
			if err != nil {
				return a.fail(fmt.Errorf("json marshal: %w", err))
			}
			fmt.Fprintln(a.out, string(data))
			return nil
		},
	}
}

func decodeArgs(raw []string) []any {
	args := make([]any, len(raw))
	for i, s := range raw {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			v = s
		}
		args[i] = v
	}
	return args
}

func creatorPaths(m actionx.CreatorMap) []string {
	var paths []string
	m.Walk(func(path []string, _ *actionx.ActionCreator) {
		paths = append(paths, strings.Join(path, "."))
	})
	return paths
}
