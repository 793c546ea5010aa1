package wreathconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/wreath/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
