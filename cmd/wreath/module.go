package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/wreath/debugs"
	"github.com/reusee/wreath/programs"
	"github.com/reusee/wreath/wreathconfigs"
)

type Module struct {
	dscope.Module
	Configs  wreathconfigs.Module
	Programs programs.Module
	Debugs   debugs.Module
}
