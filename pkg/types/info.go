package types

import (
	"encoding/json"

	"github.com/arthur-debert/dotprov/pkg/errors"
)

// ProvisionInfo is the provisioning context: the source roots searched for
// every relative source, in priority order.
type ProvisionInfo struct {
	Sources []string `json:"sources"`
}

// ParseProvisionInfo decodes the JSON context given on the command line
func ParseProvisionInfo(value string) (ProvisionInfo, error) {
	var raw struct {
		Sources *[]string `json:"sources"`
	}
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return ProvisionInfo{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid provision info")
	}
	if raw.Sources == nil {
		return ProvisionInfo{}, errors.New(errors.ErrInvalidInput, "invalid provision info: missing field `sources`")
	}

	return ProvisionInfo{Sources: *raw.Sources}, nil
}
