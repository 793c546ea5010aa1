package logs

import (
	"io"
	"os"

	"github.com/reusee/wreath/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

func init() {
	cmds.Describe("-log-file", "<path> append logs to file instead of stderr")
}

func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	return f
}
