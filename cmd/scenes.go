package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	writeSceneTable(ctx.App.Writer, scene.List())
	return nil
}

func writeSceneTable(w io.Writer, infos []scene.SceneInfo) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range infos {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()
}
