package problem

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Decode reads a problem from r. Unknown keys are rejected so that typos do
// not silently leave capacities at 0.
func Decode(r io.Reader) (*Problem, error) {
	var p Problem
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, errors.Wrap(err, "decode problem")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrapf(ErrInvalidProblem, "unknown keys: %s", strings.Join(keys, ", "))
	}

	return &p, nil
}

// Load reads the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return p, nil
}

// Encode writes p as TOML.
func Encode(w io.Writer, p *Problem) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return errors.Wrap(err, "encode problem")
	}

	return nil
}
