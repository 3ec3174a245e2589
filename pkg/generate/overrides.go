package generate

import (
	"strings"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// ParseOverride parses a KEY=VALUE string. The value may itself contain '='.
func ParseOverride(s string) (types.Override, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return types.Override{}, errors.Newf(errors.ErrInvalidInput, "invalid override '%s': expected KEY=VALUE", s)
	}
	if key == "" {
		return types.Override{}, errors.Newf(errors.ErrInvalidInput, "invalid override '%s': key must not be empty", s)
	}
	return types.Override{Key: key, Value: value}, nil
}

// ParseOverrides parses every KEY=VALUE string, keeping their order
func ParseOverrides(args []string) ([]types.Override, error) {
	overrides := make([]types.Override, 0, len(args))
	for _, arg := range args {
		o, err := ParseOverride(arg)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}
