// Package traces records program runs as YAML documents.
package traces

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/wreath/words"
	"gopkg.in/yaml.v3"
)

var ErrCodesMismatch = errors.New("codes do not match history")

type Entry struct {
	Step int    `yaml:"step"`
	Code string `yaml:"code,omitempty"`
	Word string `yaml:"word"`
}

type Trace struct {
	Run     string  `yaml:"run,omitempty"`
	Entries []Entry `yaml:"entries"`
}

// FromHistory pairs every word after the first with the code that produced it. The
// starting word is entry 0 with no code.
func FromHistory[E comparable](
	run string,
	history []words.Word[E],
	codes string,
	format func(words.Word[E]) string,
) (*Trace, error) {
	runes := []rune(codes)
	if len(history) == 0 || len(history) > len(runes)+1 {
		return nil, fmt.Errorf("%w: %d words for %d codes", ErrCodesMismatch, len(history), len(runes))
	}
	ret := &Trace{
		Run:     run,
		Entries: make([]Entry, 0, len(history)),
	}
	for i, word := range history {
		entry := Entry{
			Step: i,
			Word: format(word),
		}
		if i > 0 {
			entry.Code = string(runes[i-1])
		}
		ret.Entries = append(ret.Entries, entry)
	}
	return ret, nil
}

func (t *Trace) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(t); err != nil {
		return err
	}
	return encoder.Close()
}

func Read(r io.Reader) (*Trace, error) {
	var ret Trace
	if err := yaml.NewDecoder(r).Decode(&ret); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return &ret, nil
}
