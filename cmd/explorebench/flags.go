// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	ConfigFileKey         = "config-file"
	PolicyKey             = "policy"
	ActionsKey            = "actions"
	RoundsKey             = "rounds"
	WorkersKey            = "workers"
	EpsilonKey            = "epsilon"
	LambdaKey             = "lambda"
	BagsKey               = "bags"
	MinimumProbabilityKey = "minimum-probability"
	RateLimitKey          = "rate-limit"
	RunIDKey              = "run-id"
	RNGSeedKey            = "rng-seed"
	ProgressKey           = "progress"
	LogLevelKey           = "log-level"
	MetricsNamespaceKey   = "metrics-namespace"
)

const (
	PolicyEpsilonGreedy = "epsilon-greedy"
	PolicySoftmax       = "softmax"
	PolicyBag           = "bag"
	PolicyContinuous    = "continuous"
)

var (
	policies = map[string]struct{}{
		PolicyEpsilonGreedy: {},
		PolicySoftmax:       {},
		PolicyBag:           {},
		PolicyContinuous:    {},
	}

	errUnknownPolicy    = errors.New("unknown policy")
	errInvalidActions   = errors.New("actions must be at least 2")
	errInvalidRounds    = errors.New("rounds must be positive")
	errInvalidWorkers   = errors.New("workers must be positive")
	errInvalidEpsilon   = errors.New("epsilon must be in [0,1]")
	errInvalidBags      = errors.New("bags must be positive")
	errInvalidMinimum   = errors.New("minimum probability must be in [0,1]")
	errInvalidRateLimit = errors.New("rate limit must not be negative")
)

type Config struct {
	Policy             string
	Actions            int
	Rounds             int
	Workers            int
	Epsilon            float64
	Lambda             float64
	Bags               int
	MinimumProbability float64
	RateLimit          float64
	RunID              string
	RNGSeed            uint64
	Progress           bool
	LogLevel           string
	MetricsNamespace   string
}

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("explorebench", pflag.ContinueOnError)
	fs.String(ConfigFileKey, "", "Specifies a config file")
	fs.String(PolicyKey, PolicyEpsilonGreedy, "Exploration policy to benchmark")
	fs.Int(ActionsKey, 8, "Number of actions in the simulated bandit")
	fs.Int(RoundsKey, 10000, "Number of decisions each worker makes")
	fs.Int(WorkersKey, 4, "Number of concurrent workers")
	fs.Float64(EpsilonKey, 0.1, "Exploration mass for the epsilon-greedy policy")
	fs.Float64(LambdaKey, 2, "Sharpness of the softmax policy")
	fs.Int(BagsKey, 5, "Number of ensemble members for the bag policy")
	fs.Float64(MinimumProbabilityKey, 0.05, "Probability floor enforced on every generated distribution")
	fs.Float64(RateLimitKey, 0, "Maximum decisions per second across all workers, 0 to disable")
	fs.String(RunIDKey, "", "Replay key prefix, defaults to a random UUID")
	fs.Uint64(RNGSeedKey, 1, "Seed of the simulated environment")
	fs.Bool(ProgressKey, false, "Render a progress bar while the benchmark runs")
	fs.String(LogLevelKey, "info", "Log level of the benchmark")
	fs.String(MetricsNamespaceKey, "explorebench", "Namespace of the registered prometheus metrics")
	return fs
}

// getViper returns the viper environment from parsing [args] and, if one is
// named, the config file.
func getViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	v := viper.New()
	v.SetEnvPrefix("explorebench")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(v.GetString(ConfigFileKey))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func getConfig(args []string) (Config, error) {
	v, err := getViper(buildFlagSet(), args)
	if err != nil {
		return Config{}, err
	}
	config := Config{
		Policy:             v.GetString(PolicyKey),
		Actions:            v.GetInt(ActionsKey),
		Rounds:             v.GetInt(RoundsKey),
		Workers:            v.GetInt(WorkersKey),
		Epsilon:            v.GetFloat64(EpsilonKey),
		Lambda:             v.GetFloat64(LambdaKey),
		Bags:               v.GetInt(BagsKey),
		MinimumProbability: v.GetFloat64(MinimumProbabilityKey),
		RateLimit:          v.GetFloat64(RateLimitKey),
		RunID:              v.GetString(RunIDKey),
		RNGSeed:            v.GetUint64(RNGSeedKey),
		Progress:           v.GetBool(ProgressKey),
		LogLevel:           v.GetString(LogLevelKey),
		MetricsNamespace:   v.GetString(MetricsNamespaceKey),
	}
	if config.RunID == "" {
		config.RunID = uuid.NewString()
	}
	return config, config.Verify()
}

func (c *Config) Verify() error {
	if _, ok := policies[c.Policy]; !ok {
		valid := maps.Keys(policies)
		slices.Sort(valid)
		return fmt.Errorf("%w: %q, expected one of %s",
			errUnknownPolicy, c.Policy, strings.Join(valid, ", "))
	}
	switch {
	case c.Actions < 2:
		return fmt.Errorf("%w: %d", errInvalidActions, c.Actions)
	case c.Rounds <= 0:
		return fmt.Errorf("%w: %d", errInvalidRounds, c.Rounds)
	case c.Workers <= 0:
		return fmt.Errorf("%w: %d", errInvalidWorkers, c.Workers)
	case c.Epsilon < 0 || c.Epsilon > 1:
		return fmt.Errorf("%w: %f", errInvalidEpsilon, c.Epsilon)
	case c.Bags <= 0:
		return fmt.Errorf("%w: %d", errInvalidBags, c.Bags)
	case c.MinimumProbability < 0 || c.MinimumProbability > 1:
		return fmt.Errorf("%w: %f", errInvalidMinimum, c.MinimumProbability)
	case c.RateLimit < 0:
		return fmt.Errorf("%w: %f", errInvalidRateLimit, c.RateLimit)
	default:
		return nil
	}
}
