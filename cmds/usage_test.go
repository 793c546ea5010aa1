package cmds

import (
	"bytes"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("apply", Sub(map[string]*Command{
		"ca": Func(func() {
		}).Desc("CA"),
		"segment": Sub(map[string]*Command{
			"shift": Func(func(int) {}).Desc("SHIFT"),
		}).Desc("SEGMENT"),
	}).Desc("APPLY"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	expected := "--help, -h, -help, help\tprint this usage\n" +
		"apply\tAPPLY\n" +
		"  ca\tCA\n" +
		"  segment\tSEGMENT\n" +
		"    shift\tSHIFT\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}
