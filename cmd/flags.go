package cmd

import (
	"fmt"
	"strconv"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/spf13/pflag"
)

// schemeFlag is a pflag.Value that rejects unknown schemes at parse time.
// The zero value means "use the configured scheme".
type schemeFlag struct {
	value heatmap.Scheme
}

var _ pflag.Value = (*schemeFlag)(nil)

func (f *schemeFlag) String() string { return string(f.value) }

func (f *schemeFlag) Set(s string) error {
	sc, err := heatmap.ParseScheme(s)
	if err != nil {
		return err
	}
	f.value = sc
	return nil
}

func (f *schemeFlag) Type() string { return "scheme" }

// rangeFlag is a pflag.Value for 3m, 6m and 1y.
type rangeFlag struct {
	value activity.Range
}

var _ pflag.Value = (*rangeFlag)(nil)

func (f *rangeFlag) String() string { return string(f.value) }

func (f *rangeFlag) Set(s string) error {
	r, err := activity.ParseRange(s)
	if err != nil {
		return err
	}
	f.value = r
	return nil
}

func (f *rangeFlag) Type() string { return "range" }

// seedFlag remembers whether --seed was given so the configured seed is
// only overridden explicitly.
type seedFlag struct {
	value int64
	set   bool
}

var _ pflag.Value = (*seedFlag)(nil)

func (f *seedFlag) String() string { return strconv.FormatInt(f.value, 10) }

func (f *seedFlag) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q: expected an integer", s)
	}
	f.value, f.set = n, true
	return nil
}

func (f *seedFlag) Type() string { return "int" }
