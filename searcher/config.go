package searcher

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"othello/game"

	"github.com/pkg/errors"
)

// DefaultConfig is used when New is given an empty config string.
const DefaultConfig = "worstcase"

type constructor func(params map[string]string, options []Option) (Strategy, error)

var strategies = map[string]constructor{
	"minimax": func(params map[string]string, options []Option) (Strategy, error) {
		depth, err := intParam(params, "depth", 0)
		if err != nil {
			return nil, err
		}
		if _, ok := params["depth"]; ok && depth <= 0 {
			return nil, errors.Wrapf(ErrBadParam, "depth must be positive, got %d", depth)
		}
		return NewMinimax(append(slices.Clone(options), WithDepth(depth))...), nil
	},
	"worstcase": func(params map[string]string, options []Option) (Strategy, error) {
		return NewWorstCase(options...), nil
	},
	"greedy": func(params map[string]string, options []Option) (Strategy, error) {
		return NewGreedy(options...), nil
	},
	"random": func(params map[string]string, options []Option) (Strategy, error) {
		if _, ok := params["seed"]; ok {
			seed, err := strconv.ParseUint(params["seed"], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrBadParam, "seed=%q", params["seed"])
			}
			options = append(slices.Clone(options), WithSeed(seed))
		}
		return NewRandom(options...), nil
	},
}

var evaluators = map[string]game.Evaluate{
	"corners": game.EvaluateParityCorners,
	"parity":  game.EvaluateParity,
}

// Names lists the registered strategy names.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a strategy from "<name>[:key=value,...]", e.g.
// "minimax:depth=4,eval=parity". Keys understood by every strategy:
// eval (corners|parity) and metrics. Options are applied before the
// parsed parameters.
func New(config string, options ...Option) (Strategy, error) {
	if config == "" {
		config = DefaultConfig
	}

	name, rest, _ := strings.Cut(config, ":")
	build, ok := strategies[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}

	params := splitConfigString(rest)
	options = slices.Clone(options)
	if evalName, ok := params["eval"]; ok {
		evaluate, ok := evaluators[evalName]
		if !ok {
			return nil, errors.Wrapf(ErrBadParam, "eval=%q", evalName)
		}
		options = append(options, WithEvaluationFn(evaluate))
	}
	if _, ok := params["metrics"]; ok {
		options = append(options, WithMetrics())
	}

	strategy, err := build(params, options)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create strategy %q", name)
	}
	return strategy, nil
}

func splitConfigString(config string) map[string]string {
	params := make(map[string]string)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		params[key] = value
	}
	return params
}

func intParam(params map[string]string, key string, defaultValue int) (int, error) {
	value, ok := params[key]
	if !ok || value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(ErrBadParam, "%s=%q", key, value)
	}
	return parsed, nil
}
