package wreathconfigs

import (
	"github.com/reusee/wreath/cmds"
	"github.com/reusee/wreath/configs"
	"github.com/reusee/wreath/figures"
	"github.com/reusee/wreath/lamplighter"
	"github.com/reusee/wreath/modes"
	"github.com/reusee/wreath/rewrites"
	"github.com/reusee/wreath/vars"
)

var (
	strictFlag  = cmds.Switch("-strict")
	outputFlag  = cmds.Var[string]("-out")
	wordFlag    = cmds.Var[string]("-word")
	programFlag = cmds.Var[string]("-program")
	traceFlag   = cmds.Var[string]("-trace")
)

func init() {
	cmds.Describe("-strict", "fail when a long enough walled run has no pattern")
	cmds.Describe("-out", "<path> TikZ output file")
	cmds.Describe("-word", "<word> starting word, like '000/000 > 101/000 < 000/000'")
	cmds.Describe("-program", "<codes> operation codes to apply in order")
	cmds.Describe("-trace", "<path> write the run as YAML")
}

type Output string

func (Module) Output(
	loader configs.Loader,
) Output {
	return Output(vars.FirstNonZero(
		*outputFlag,
		configs.First[string](loader, "output"),
		"spacetime.tex",
	))
}

// Trace is the YAML trace path, empty for none.
type Trace string

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(vars.FirstNonZero(
		*traceFlag,
		configs.First[string](loader, "trace"),
	))
}

// StartWord is the starting word in lamplighter text form.
type StartWord string

func (Module) StartWord(
	loader configs.Loader,
) StartWord {
	return StartWord(vars.FirstNonZero(
		*wordFlag,
		configs.First[string](loader, "word"),
		lamplighter.ExampleWord,
	))
}

type ProgramCodes string

func (Module) ProgramCodes(
	loader configs.Loader,
) ProgramCodes {
	return ProgramCodes(vars.FirstNonZero(
		*programFlag,
		configs.First[string](loader, "program"),
		lamplighter.ExampleCodes,
	))
}

type layoutConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Pad    float64 `json:"pad"`
}

func (Module) Layout(
	loader configs.Loader,
) figures.Layout {
	config := configs.First[layoutConfig](loader, "layout")
	return figures.Layout{
		Width:  vars.FirstNonZero(config.Width, figures.DefaultLayout.Width),
		Height: vars.FirstNonZero(config.Height, figures.DefaultLayout.Height),
		Pad:    vars.FirstNonZero(config.Pad, figures.DefaultLayout.Pad),
	}
}

// Checks enables strict locating from the flag or the config, on top of what the mode implies.
func (Module) Checks(
	loader configs.Loader,
	mode modes.Mode,
) rewrites.Checks {
	checks := mode.Checks()
	if *strictFlag || configs.First[bool](loader, "strict") {
		checks.Strict = true
	}
	return checks
}
