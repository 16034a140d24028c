package unit

import (
	"gopkg.in/yaml.v3"
)

// TableFromYAML loads a unit table document, for building registries from a
// custom declaration instead of the builtin one.
func TableFromYAML(d []byte) (t Table, err error) {
	err = yaml.Unmarshal(d, &t)

	return
}

func (t Table) ToYAML() ([]byte, error) {
	return yaml.Marshal(t)
}
