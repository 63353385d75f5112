package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/shenikar/cpr_dispatch/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

var etaPattern = regexp.MustCompile(`^([1-9]|[12][0-9]|30) min$`)

type file struct {
	Requests []entry `yaml:"requests"`
}

type entry struct {
	ID                string               `yaml:"id"`
	Location          string               `yaml:"location"`
	Distance          string               `yaml:"distance"`
	Description       string               `yaml:"description"`
	Type              models.EmergencyType `yaml:"type"`
	AcceptedETAs      []string             `yaml:"accepted_etas"`
	HasMedicalProfile bool                 `yaml:"has_medical_profile"`
	CanSMS            bool                 `yaml:"can_sms"`
	Age               time.Duration        `yaml:"age"`
	Coordinates       models.Coordinates   `yaml:"coordinates"`
}

// Load читает seed из файла, при пустом пути берет встроенный набор
func Load(path string, now time.Time) ([]*models.EmergencyRequest, error) {
	contents := defaultSeed
	if path != "" {
		var err error
		contents, err = os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read seed: %w", err)
		}
	}
	return Parse(contents, now)
}

// Parse разбирает YAML и возвращает запросы, упорядоченные по времени создания
func Parse(contents []byte, now time.Time) ([]*models.EmergencyRequest, error) {
	var f file
	if err := yaml.Unmarshal(contents, &f); err != nil {
		return nil, fmt.Errorf("unmarshal seed: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Requests))
	reqs := make([]*models.EmergencyRequest, 0, len(f.Requests))
	for i, e := range f.Requests {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("seed request #%d: %w", i+1, err)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("seed request #%d: duplicate id %q", i+1, e.ID)
		}
		seen[e.ID] = struct{}{}

		createdAt := now.Add(-e.Age)
		etas := append([]string{}, e.AcceptedETAs...)
		reqs = append(reqs, &models.EmergencyRequest{
			ID:                e.ID,
			Location:          e.Location,
			Distance:          e.Distance,
			Coordinates:       e.Coordinates,
			Type:              e.Type,
			Description:       e.Description,
			AcceptedETAs:      etas,
			HasMedicalProfile: e.HasMedicalProfile,
			CanSMS:            e.CanSMS,
			CreatedAt:         createdAt,
			UpdatedAt:         createdAt,
		})
	}

	// порядок в реестре совпадает с порядком создания
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.Before(reqs[j].CreatedAt)
	})
	return reqs, nil
}

func (e entry) validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: id is required", models.ErrInvalidInput)
	}
	if !e.Type.IsValid() {
		return fmt.Errorf("%w: unknown emergency type %q", models.ErrInvalidInput, e.Type)
	}
	if e.Age < 0 {
		return fmt.Errorf("%w: age must not be negative", models.ErrInvalidInput)
	}
	for _, eta := range e.AcceptedETAs {
		if !etaPattern.MatchString(eta) {
			return fmt.Errorf("%w: malformed eta %q", models.ErrInvalidInput, eta)
		}
	}
	return nil
}
