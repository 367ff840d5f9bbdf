package main

import (
	. "github.com/saylorsolutions/modmake"

	"github.com/saylorsolutions/stegx/internal/buildinfo"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	stegx := NewAppBuild("stegx", "cmd/stegx", buildinfo.Version)
	stegx.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", buildinfo.Version).
			CgoEnabled(false)
	})
	stegx.Variant("windows", "amd64")
	stegx.Variant("linux", "amd64")
	stegx.Variant("linux", "arm64")
	stegx.Variant("darwin", "amd64")
	stegx.Variant("darwin", "arm64")
	b.ImportApp(stegx)

	b.Execute()
}
