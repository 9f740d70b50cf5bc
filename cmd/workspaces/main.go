package workspaces

import (
	"context"
	"image/color"
	"os"
	runtimeDebug "runtime/debug"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/team-loco/workspaces/internal/ui"
)

// ColorScheme maps the UI palette onto fang's help and error output.
func ColorScheme() fang.ColorSchemeFunc {
	return func(ldf lipgloss.LightDarkFunc) fang.ColorScheme {
		return fang.ColorScheme{
			Base:           ldf(ui.LightGray, ui.DarkGray),
			Title:          ldf(ui.Red, ui.Orange),
			Description:    ldf(ui.MidGray, ui.Steel),
			Codeblock:      ldf(ui.LightGray, ui.Coal),
			Program:        ldf(ui.Orange, ui.Orange),
			DimmedArgument: ldf(ui.DimGray, ui.MidGray),
			Comment:        ldf(ui.MidGray, ui.DimGray),
			Flag:           ldf(ui.Orange, ui.Orange),
			FlagDefault:    ldf(ui.Steel, ui.DimGray),
			Command:        ldf(ui.Red, ui.Orange),
			QuotedString:   ldf(ui.Green, ui.Green),
			Argument:       ldf(ui.Cyan, ui.Cyan),
			Help:           ldf(ui.DimGray, ui.MidGray),
			Dash:           ldf(ui.Orange, ui.Orange),
			ErrorHeader: [2]color.Color{
				ldf(ui.White, ui.White),
				ldf(ui.Red, ui.Red),
			},
			ErrorDetails: ldf(ui.Red, ui.Orange),
		}
	}
}

func Cli() {
	i, ok := runtimeDebug.ReadBuildInfo()
	if !ok {
		i = &runtimeDebug.BuildInfo{
			Main: runtimeDebug.Module{
				Path:    "github.com/team-loco/workspaces",
				Version: "v0.0.1",
			},
		}
	}

	if err := fang.Execute(context.Background(),
		NewRootCmd(),
		fang.WithVersion(i.Main.Version),
		fang.WithColorSchemeFunc(ColorScheme())); err != nil {
		os.Exit(1)
	}
}
