package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/fluidform/sph-simulations/pkg/config"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage scene workspaces",
	Long:  `Manage the named scene directories sph-sim searches for scenes`,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured workspaces",
	RunE:  listWorkspaces,
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new workspace",
	RunE:  addWorkspace,
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a workspace",
	RunE:  removeWorkspace,
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceAddCmd)
	workspaceCmd.AddCommand(workspaceRemoveCmd)
}

func listWorkspaces(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(cfg.Workspaces) == 0 {
		fmt.Println("No workspaces configured")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDIRECTORY\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t---------\t-----------")

	for _, ws := range cfg.Workspaces {
		name := ws.Name
		if name == cfg.Selected {
			name += " *"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, ws.Dir, ws.Description)
	}

	return w.Flush()
}

func addWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	var ws config.Workspace

	// Prompt for name
	namePrompt := &survey.Input{
		Message: "Workspace name:",
	}
	if err := survey.AskOne(namePrompt, &ws.Name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	// Check if name already exists
	for _, existing := range cfg.Workspaces {
		if existing.Name == ws.Name {
			return fmt.Errorf("workspace %s already exists", ws.Name)
		}
	}

	// Prompt for directory
	dirPrompt := &survey.Input{
		Message: "Scene directory:",
		Default: "scenes",
	}
	if err := survey.AskOne(dirPrompt, &ws.Dir, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	// Prompt for description
	descPrompt := &survey.Input{
		Message: "Description (optional):",
	}
	if err := survey.AskOne(descPrompt, &ws.Description); err != nil {
		return err
	}

	// Add to config
	cfg.Workspaces = append(cfg.Workspaces, ws)

	// Save config
	if err := config.SaveWorkspaces(cfg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Printf("Workspace %s added successfully\n", ws.Name)
	return nil
}

func removeWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(cfg.Workspaces) == 0 {
		fmt.Println("No workspaces to remove")
		return nil
	}

	// Build list of workspace names
	names := make([]string, len(cfg.Workspaces))
	for i, ws := range cfg.Workspaces {
		names[i] = ws.Name
	}

	// Prompt for selection
	var selected string
	prompt := &survey.Select{
		Message: "Select workspace to remove:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	// Confirm removal
	var confirm bool
	confirmPrompt := &survey.Confirm{
		Message: fmt.Sprintf("Are you sure you want to remove %s?", selected),
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
		return err
	}

	if !confirm {
		fmt.Println("Removal cancelled")
		return nil
	}

	// Remove from config
	newWorkspaces := make([]config.Workspace, 0, len(cfg.Workspaces)-1)
	for _, ws := range cfg.Workspaces {
		if ws.Name != selected {
			newWorkspaces = append(newWorkspaces, ws)
		}
	}
	cfg.Workspaces = newWorkspaces
	if cfg.Selected == selected {
		cfg.Selected = ""
	}

	// Save config
	if err := config.SaveWorkspaces(cfg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Printf("Workspace %s removed successfully\n", selected)
	return nil
}
