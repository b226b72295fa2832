package samples

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// ErrPersonaNotFound is returned for an unknown persona id.
var ErrPersonaNotFound = errors.New("samples: persona not found")

//go:embed personas.yaml
var personasYAML []byte

// Persona is a named sample contact record.
type Persona struct {
	ID     string                  `yaml:"id" json:"id"`
	Label  string                  `yaml:"label" json:"label"`
	Record signature.ContactRecord `yaml:"record" json:"record"`
}

// yamlRecord mirrors ContactRecord with yaml keys matching the JSON ones.
type yamlRecord struct {
	Name             string            `yaml:"name"`
	Email            string            `yaml:"email"`
	Title            string            `yaml:"title"`
	Company          string            `yaml:"company"`
	Department       string            `yaml:"department"`
	Address          string            `yaml:"address"`
	Phone            string            `yaml:"phone"`
	MobilePhone      string            `yaml:"mobilePhone"`
	OfficePhone      string            `yaml:"officePhone"`
	Website          string            `yaml:"website"`
	LogoData         string            `yaml:"logoData"`
	PrimaryColor     string            `yaml:"primaryColor"`
	SecondaryColor   string            `yaml:"secondaryColor"`
	SocialLinks      map[string]string `yaml:"socialLinks"`
	AdditionalFields map[string]string `yaml:"additionalFields"`
	CustomStyles     map[string]string `yaml:"customStyles"`
	TemplateID       string            `yaml:"templateId"`
}

type yamlPersona struct {
	ID     string     `yaml:"id"`
	Label  string     `yaml:"label"`
	Record yamlRecord `yaml:"record"`
}

var (
	loadOnce sync.Once
	personas []Persona
	loadErr  error
)

// Parse decodes a personas document.
func Parse(data []byte) ([]Persona, error) {
	var raw []yamlPersona
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("samples: decode personas: %w", err)
	}
	out := make([]Persona, 0, len(raw))
	for _, p := range raw {
		if p.ID == "" {
			return nil, fmt.Errorf("samples: persona %q has no id", p.Label)
		}
		out = append(out, Persona{ID: p.ID, Label: p.Label, Record: signature.ContactRecord(p.Record)})
	}
	return out, nil
}

// All returns the embedded personas in file order.
func All() ([]Persona, error) {
	loadOnce.Do(func() {
		personas, loadErr = Parse(personasYAML)
	})
	return slices.Clone(personas), loadErr
}

// Get returns the persona with id.
func Get(id string) (Persona, error) {
	all, err := All()
	if err != nil {
		return Persona{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Persona{}, ErrPersonaNotFound
}

// ForTemplate returns the first persona designed for templateID, or the first
// persona when none is.
func ForTemplate(templateID string) (Persona, error) {
	all, err := All()
	if err != nil {
		return Persona{}, err
	}
	if len(all) == 0 {
		return Persona{}, ErrPersonaNotFound
	}
	for _, p := range all {
		if p.Record.TemplateID == templateID {
			return p, nil
		}
	}
	return all[0], nil
}
