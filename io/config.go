package io

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gridinterp/math/interpolate"
)

const (
	ExampleGridFile = `[Grid]

#######################
# Required Parameters #
#######################

# Order of the axes in the grid. Every name here needs a matching [Axis]
# section below. The first axis varies slowest in DataFile.
Axes = temperature, flow

# Whitespace-separated table with one column per data set and one row per grid
# point. Rows are ordered with the first axis varying slowest and the last
# axis varying fastest. Lines starting with '#' are ignored.
DataFile = path/to/data.txt

# Names of the columns in DataFile.
DataSets = capacity, power

#######################
# Optional Parameters #
#######################

# Name used to prefix log messages.
# Name = chiller

# Whitespace-separated table with one column per axis. Each row is evaluated
# by the -Lookup mode.
# TargetFile = path/to/targets.txt

# If set, every data set is normalized so that its value at this point is
# 1/NormalizeScalar. NormalizeScalar defaults to 1.
# NormalizeAt = 25, 0.5
# NormalizeScalar = 1

# Where log messages go. Defaults to standard output. LogFormat can be one of
# [ Text | JSON ].
# LogFile = log.out
# LogFormat = Text

[Axis "temperature"]

# Strictly increasing coordinates of the axis.
Values = 10, 20, 30, 40

# Interpolation can be one of [ Linear | Cubic ]. Default is Linear.
Interpolation = Cubic

# Extrapolation can be one of [ Constant | Linear ]. Default is Constant.
Extrapolation = Linear

# Targets beyond these limits are rejected. Defaults are -inf and +inf.
# LowerLimit = 0
# UpperLimit = 50

[Axis "flow"]
Values = 0, 0.5, 1`
)

type GridConfig struct {
	// Required
	Axes string
	DataFile string
	DataSets string

	// Optional
	Name string
	TargetFile string
	NormalizeAt string
	NormalizeScalar float64
	LogFile string
	LogFormat string
}

type AxisConfig struct {
	// Required
	Values string

	// Optional
	Interpolation, Extrapolation string
	LowerLimit, UpperLimit string

	name string
	vals []float64
	interp, extrap interpolate.Method
	low, high float64
}

type GridWrapper struct {
	Grid GridConfig
	Axis map[string]*AxisConfig
}

func DefaultGridWrapper() *GridWrapper {
	return &GridWrapper{
		Grid: GridConfig{ NormalizeScalar: 1, LogFormat: "Text" },
	}
}

// ReadGridConfig reads and validates a grid configuration file.
func ReadGridConfig(fname string) (*GridWrapper, error) {
	wrap := DefaultGridWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.CheckInit(); err != nil { return nil, err }
	return wrap, nil
}

// ReadGridConfigString reads and validates a grid configuration from a string.
func ReadGridConfigString(str string) (*GridWrapper, error) {
	wrap := DefaultGridWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil { return nil, err }
	if err := wrap.CheckInit(); err != nil { return nil, err }
	return wrap, nil
}

func (wrap *GridWrapper) CheckInit() error {
	if err := wrap.Grid.CheckInit(); err != nil { return err }

	names := wrap.Grid.AxisNames()
	used := map[string]bool{}
	for _, name := range names {
		ax, ok := wrap.Axis[name]
		if !ok {
			return fmt.Errorf(
				"Axis '%s' is listed in Axes, but has no [Axis \"%s\"] " +
					"section.", name, name,
			)
		} else if used[name] {
			return fmt.Errorf("Axis '%s' is listed in Axes twice.", name)
		}
		used[name] = true

		if err := ax.CheckInit(name); err != nil { return err }
	}

	for name := range wrap.Axis {
		if !used[name] {
			return fmt.Errorf(
				"[Axis \"%s\"] section is not listed in Axes.", name,
			)
		}
	}

	if wrap.Grid.NormalizeAt != "" {
		target, err := parseFloats(wrap.Grid.NormalizeAt)
		if err != nil {
			return fmt.Errorf("Could not parse NormalizeAt: %s", err.Error())
		} else if len(target) != len(names) {
			return fmt.Errorf(
				"NormalizeAt has %d values, but there are %d axes.",
				len(target), len(names),
			)
		}
	}

	return nil
}

func (con *GridConfig) CheckInit() error {
	if strings.TrimSpace(con.Axes) == "" {
		return fmt.Errorf("Need to specify at least one axis in 'Axes'.")
	} else if strings.TrimSpace(con.DataFile) == "" {
		return fmt.Errorf("Need to specify a 'DataFile'.")
	} else if len(con.DataSetNames()) == 0 {
		return fmt.Errorf("Need to specify at least one name in 'DataSets'.")
	}

	if con.NormalizeScalar == 0 {
		return fmt.Errorf("NormalizeScalar cannot be zero.")
	}

	tmp := con.LogFormat
	con.LogFormat = strings.Trim(strings.ToUpper(con.LogFormat), " ")
	if con.LogFormat == "" { con.LogFormat = "TEXT" }
	if con.LogFormat != "TEXT" && con.LogFormat != "JSON" {
		return fmt.Errorf(
			"LogFormat must be one of [Text | JSON]. '%s' is not " +
				"recognized.", tmp,
		)
	}

	return nil
}

func (con *GridConfig) AxisNames() []string { return splitNames(con.Axes) }
func (con *GridConfig) DataSetNames() []string { return splitNames(con.DataSets) }

// NormalizeTarget returns the parsed NormalizeAt point, or nil if it wasn't
// set.
func (con *GridConfig) NormalizeTarget() []float64 {
	if con.NormalizeAt == "" { return nil }
	target, _ := parseFloats(con.NormalizeAt)
	return target
}

func (ax *AxisConfig) CheckInit(name string) error {
	ax.name = name

	vals, err := parseFloats(ax.Values)
	if err != nil {
		return fmt.Errorf(
			"Could not parse Values of Axis '%s': %s", name, err.Error(),
		)
	} else if len(vals) == 0 {
		return fmt.Errorf("Need to specify Values for Axis '%s'.", name)
	}
	ax.vals = vals

	ax.interp = interpolate.Linear
	if ax.Interpolation != "" {
		ax.interp, err = interpolate.ParseMethod(ax.Interpolation)
		if err != nil || ax.interp == interpolate.Constant {
			return fmt.Errorf(
				"Interpolation of Axis '%s' must be one of [Linear | Cubic]. " +
					"'%s' is not recognized.", name, ax.Interpolation,
			)
		}
	}

	ax.extrap = interpolate.Constant
	if ax.Extrapolation != "" {
		ax.extrap, err = interpolate.ParseMethod(ax.Extrapolation)
		if err != nil || ax.extrap == interpolate.Cubic {
			return fmt.Errorf(
				"Extrapolation of Axis '%s' must be one of [Constant | " +
					"Linear]. '%s' is not recognized.", name, ax.Extrapolation,
			)
		}
	}

	ax.low, ax.high = math.Inf(-1), math.Inf(+1)
	if ax.LowerLimit != "" {
		if ax.low, err = parseFloat(ax.LowerLimit); err != nil {
			return fmt.Errorf(
				"Could not parse LowerLimit of Axis '%s': %s", name, err.Error(),
			)
		}
	}
	if ax.UpperLimit != "" {
		if ax.high, err = parseFloat(ax.UpperLimit); err != nil {
			return fmt.Errorf(
				"Could not parse UpperLimit of Axis '%s': %s", name, err.Error(),
			)
		}
	}

	return nil
}

// Options returns the options needed to build this axis. CheckInit must have
// been called first.
func (ax *AxisConfig) Options() []interpolate.AxisOption {
	return []interpolate.AxisOption{
		interpolate.AxisName(ax.name),
		interpolate.AxisInterpolation(ax.interp),
		interpolate.AxisExtrapolation(ax.extrap),
		interpolate.AxisLimits(ax.low, ax.high),
	}
}

func splitNames(s string) []string {
	out := []string{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" { out = append(out, tok) }
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	toks := splitNames(s)
	out := make([]float64, len(toks))
	for i, tok := range toks {
		x, err := parseFloat(tok)
		if err != nil { return nil, err }
		out[i] = x
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil { return 0, fmt.Errorf("'%s' is not a number", s) }
	return x, nil
}
