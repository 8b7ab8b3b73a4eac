package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Gabolonhez/Portfolio/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the stored language and theme preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:       "get [language|theme]",
	Short:     "Print one preference, or all of them",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(prefs.Language), string(prefs.Theme)},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreferences(func(store *prefs.Store) error {
			if len(args) == 1 {
				kind, err := prefs.ParseKind(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), store.Get(kind))
				return nil
			}
			for _, kind := range prefs.Kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", kind, store.Get(kind))
			}
			return nil
		})
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <language|theme> [value]",
	Short: "Store a preference; prompts for the value when it is omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := prefs.ParseKind(args[0])
		if err != nil {
			return err
		}
		return withPreferences(func(store *prefs.Store) error {
			var value string
			if len(args) == 2 {
				value = args[1]
			} else {
				if value, err = promptValue(kind, store.Get(kind)); err != nil {
					return err
				}
			}
			if err := store.Set(kind, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", kind, value)
			return nil
		})
	},
}

var prefsToggleCmd = &cobra.Command{
	Use:   "toggle <language|theme>",
	Short: "Switch a preference to its other value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := prefs.ParseKind(args[0])
		if err != nil {
			return err
		}
		return withPreferences(func(store *prefs.Store) error {
			value, err := store.Toggle(kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", kind, value)
			return nil
		})
	},
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd, prefsSetCmd, prefsToggleCmd)
	rootCmd.AddCommand(prefsCmd)
}

// withPreferences opens the configured preference store for fn.
func withPreferences(fn func(*prefs.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closer, err := openPreferences(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	return fn(store)
}

// promptValue asks for a value of kind, starting at the current one.
func promptValue(kind prefs.Kind, current string) (string, error) {
	values := prefs.Values(kind)
	cursor := 0
	for i, v := range values {
		if v == current {
			cursor = i
		}
	}
	p := promptui.Select{
		Label:     fmt.Sprintf("Select %s", kind),
		Items:     values,
		CursorPos: cursor,
	}
	_, value, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("%s selection: %w", kind, err)
	}
	return value, nil
}
