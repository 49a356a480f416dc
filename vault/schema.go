package vault

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitfsorg/libvault-go/decode"
)

// schemaFile is the YAML shape of a schema definition file:
//
//	chunks:
//	  ACCT:
//	    - name: id
//	    - name: username
//	      encoding: aes256
type schemaFile struct {
	Chunks map[string][]schemaItem `yaml:"chunks"`
}

type schemaItem struct {
	Name     string `yaml:"name"`
	Encoding string `yaml:"encoding"`
}

// LoadSchemas reads chunk schemas from YAML. Chunk ids must be four
// uppercase ASCII letters and item names must be non-empty and unique
// within a chunk; encoding tags go through decode.ParseEncoding, so an
// unknown tag fails the load with decode.ErrUnsupportedEncoding rather
// than passing values through undecoded later.
func LoadSchemas(r io.Reader) (map[string][]ItemSpec, error) {
	var file schemaFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	schemas := make(map[string][]ItemSpec, len(file.Chunks))
	for id, items := range file.Chunks {
		if !validChunkID(id) {
			return nil, fmt.Errorf("%w: chunk id %q must be 4 uppercase ASCII letters", ErrInvalidSchema, id)
		}
		specs := make([]ItemSpec, 0, len(items))
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if item.Name == "" {
				return nil, fmt.Errorf("%w: chunk %s has an unnamed item", ErrInvalidSchema, id)
			}
			if seen[item.Name] {
				return nil, fmt.Errorf("%w: chunk %s repeats item %q", ErrInvalidSchema, id, item.Name)
			}
			seen[item.Name] = true
			enc, err := decode.ParseEncoding(item.Encoding)
			if err != nil {
				return nil, fmt.Errorf("chunk %s item %q: %w", id, item.Name, err)
			}
			specs = append(specs, ItemSpec{Name: item.Name, Encoding: enc})
		}
		schemas[id] = specs
	}
	return schemas, nil
}

// LoadSchemas reads YAML schemas and registers all of them. Nothing is
// registered if any schema is invalid.
func (r *Registry) LoadSchemas(src io.Reader) error {
	schemas, err := LoadSchemas(src)
	if err != nil {
		return err
	}
	for id, specs := range schemas {
		r.Register(id, specs)
	}
	return nil
}

func validChunkID(id string) bool {
	if len(id) != 4 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 'A' || id[i] > 'Z' {
			return false
		}
	}
	return true
}
