package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBatch reads a batch definition from a YAML file. Moments may give
// either a duration or an end time; the missing one is derived.
func LoadBatch(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var batch BatchConfig
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}

	for i := range batch.Moments {
		m := &batch.Moments[i]
		if m.Duration == 0 && m.EndTime > m.StartTime {
			m.Duration = m.EndTime - m.StartTime
		}
		if m.EndTime == 0 && m.Duration > 0 {
			m.EndTime = m.StartTime + m.Duration
		}
	}

	return &batch, nil
}
