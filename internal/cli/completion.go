package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framewright/pkg/section"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for framewright.

To load completions:

Bash:
  $ source <(framewright completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ framewright completion bash > /etc/bash_completion.d/framewright
  # macOS:
  $ framewright completion bash > $(brew --prefix)/etc/bash_completion.d/framewright

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ framewright completion zsh > "${fpath[1]}/_framewright"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ framewright completion fish | source

  # To load completions for each session, execute once:
  $ framewright completion fish > ~/.config/fish/completions/framewright.fish

PowerShell:
  PS> framewright completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> framewright completion powershell > framewright.ps1
  # and source this file from your PowerShell profile.
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

	return cmd
}

// completeViews completes the comma-separated --views flag with the view
// kinds not yet listed.
func completeViews(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done, prefix := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done, prefix = toComplete[:i+1], toComplete[i+1:]
	}
	given, _ := section.ParseKinds(strings.Split(strings.TrimSuffix(done, ","), ","))

	var out []string
	for _, name := range strings.Split(section.AllKinds.String(), ",") {
		kind, _ := section.ParseKinds([]string{name})
		if done != "" && given.Has(kind) {
			continue
		}
		if strings.HasPrefix(name, strings.ToLower(prefix)) {
			out = append(out, done+name)
		}
	}
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}
