package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/henkwiedig/msposd-remote/pkg/cli/sh"
	"github.com/henkwiedig/msposd-remote/pkg/remote"
)

func init() {
	remote.SetupFlags()
}

func main() {
	flag.Parse()
	sh.Main()
}
