package command

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/spf13/cobra"
)

func NewVersionCmd(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool(flagJSON)
			out := cmd.OutOrStdout()

			if jsonMode {
				return json.NewEncoder(out).Encode(build.Fields())
			}

			fmt.Fprintf(out, "Build version: %s\n", build.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", build.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", build.BuildCommit())
			return nil
		},
	}
}
