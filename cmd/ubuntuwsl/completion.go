// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/ubuntu/ubuntuwsl/internal/schema"

	"github.com/spf13/cobra"
)

// newCompletionCommand creates the `ubuntuwsl completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ubuntuwsl.

` + SubtitleStyle.Render("Bash:") + `
  ubuntuwsl completion bash > /etc/bash_completion.d/ubuntuwsl

` + SubtitleStyle.Render("Zsh:") + `
  ubuntuwsl completion zsh > "${fpath[1]}/_ubuntuwsl"

` + SubtitleStyle.Render("Fish:") + `
  ubuntuwsl completion fish > ~/.config/fish/completions/ubuntuwsl.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeInstances offers instance names.
func completeInstances(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, inst := range schema.NewRegistry().Instances() {
		if strings.HasPrefix(inst.Type.String(), toComplete) {
			out = append(out, inst.Type.String()+"\t"+inst.FriendlyName)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeKeys offers <instance>.<section>.<setting> keys for the first argument.
func completeKeys(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, inst := range schema.NewRegistry().Instances() {
		for _, sec := range inst.Sections {
			for _, st := range sec.Settings {
				key := schema.Key{Instance: inst.Type, Section: sec.Name, Setting: st.Name}.String()
				if strings.HasPrefix(key, toComplete) {
					out = append(out, key+"\t"+st.FriendlyName)
				}
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
