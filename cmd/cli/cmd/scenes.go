package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fluidform/sph-simulations/pkg/logger"
	"github.com/fluidform/sph-simulations/pkg/utils"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List scenes in the active workspace",
	Long:  `List all scene catalogs discovered under the active workspace directory`,
	RunE:  listScenes,
}

func listScenes(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}

	var scenes []utils.SceneInfo
	err = logger.WithSpinner(fmt.Sprintf("Scanning %s", ws.Dir), func() error {
		var err error
		scenes, err = utils.DiscoverScenes(ws.Dir)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to discover scenes: %w", err)
	}

	if len(scenes) == 0 {
		fmt.Printf("No scenes found in workspace %s\n", ws.Name)
		return nil
	}

	// Create tabwriter for formatted output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tVERSION\tSCENE FILE\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t-------\t----------\t-----------")

	for _, info := range scenes {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			info.Catalog.Name,
			info.Catalog.Version,
			info.ScenePath(),
			info.Catalog.Description,
		)
	}

	return w.Flush()
}
