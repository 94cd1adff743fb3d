package cmd

import (
	"fmt"

	"github.com/dnorman/learnchain/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <value>",
	Short: "Store the API credential for the configured provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.SetKey(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Printf("Credential stored for provider %q.\n", cfg.Provider)
		return nil
	},
}

var configSetProviderCmd = &cobra.Command{
	Use:   "set-provider <name>",
	Short: "Select the LLM provider (openai, anthropic, gemini, openrouter, mock)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.Provider = args[0]
		if err := cfg.LLMConfig().Validate(); err != nil {
			fmt.Printf("Note: %v\n", err)
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Printf("Provider set to %q.\n", cfg.Provider)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetProviderCmd)
}
