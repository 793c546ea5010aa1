package wreathconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/wreath/cmds"
	"github.com/reusee/wreath/configs"
	"github.com/reusee/wreath/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Var[string]("-config")

func init() {
	cmds.Describe("-config", "<path> cue config file, before discovered ones")
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit
	if *configFlag != "" {
		paths = append(paths, *configFlag)
	}

	filenames := []string{
		"wreath.cue",
		".wreath.cue",
	}
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
