package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomaslara/rangepick/internal/config"
	"github.com/tomaslara/rangepick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  rangepick config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
	cmd.AddCommand(a.configInitCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			configPath := config.DefaultConfigPath()
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config file already exists at %s", configPath)
			}
			cfg := config.Default()
			if err := cfg.SaveTo(configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Printf("Created %s\n", configPath)
			return nil
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.Picker.Format = promptValue(reader, "Date format", cfg.Picker.Format)
	cfg.Picker.MinDate = promptValue(reader, "Minimum date (empty for unbounded)", cfg.Picker.MinDate)
	cfg.Picker.MaxDate = promptValue(reader, "Maximum date (empty for unbounded)", cfg.Picker.MaxDate)
	cfg.Picker.AllowSingleDay = promptBool(reader, "Allow single-day ranges", cfg.Picker.AllowSingleDay)
	cfg.Picker.CloseOnSelection = promptBool(reader, "Close calendar on selection", cfg.Picker.CloseOnSelection)
	cfg.Picker.OpenOnFocus = promptBool(reader, "Open calendar on field focus", cfg.Picker.OpenOnFocus)
	cfg.Picker.Shortcuts = promptBool(reader, "Expand shortcuts (today, mon, +3d)", cfg.Picker.Shortcuts)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[picker]")
	fmt.Printf("  format             = %s\n", cfg.Picker.Format)
	if cfg.Picker.MinDate != "" {
		fmt.Printf("  min_date           = %s\n", cfg.Picker.MinDate)
	}
	if cfg.Picker.MaxDate != "" {
		fmt.Printf("  max_date           = %s\n", cfg.Picker.MaxDate)
	}
	fmt.Printf("  allow_single_day   = %t\n", cfg.Picker.AllowSingleDay)
	fmt.Printf("  close_on_selection = %t\n", cfg.Picker.CloseOnSelection)
	fmt.Printf("  open_on_focus      = %t\n", cfg.Picker.OpenOnFocus)
	fmt.Printf("  shortcuts          = %t\n", cfg.Picker.Shortcuts)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path            = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme              = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, label string, current bool) bool {
	value := promptValue(reader, label+" (true/false)", strconv.FormatBool(current))
	parsed, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return current
	}
	return parsed
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Names(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
