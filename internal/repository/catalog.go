package repository

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tempdev/site/internal/model"
)

//go:embed default_cars.json
var defaultCatalog []byte

// DefaultCatalog returns the built-in vehicle catalog.
func DefaultCatalog() []model.Vehicle {
	var vehicles []model.Vehicle
	if err := json.Unmarshal(defaultCatalog, &vehicles); err != nil {
		panic(fmt.Sprintf("repository: embedded catalog is invalid: %v", err))
	}
	return vehicles
}

// LoadCatalog reads a vehicle catalog from path. A missing file yields the
// built-in catalog; an unreadable or malformed one is an error.
func LoadCatalog(path string) ([]model.Vehicle, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: read catalog: %w", err)
	}
	var vehicles []model.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, fmt.Errorf("repository: decode catalog %s: %w", path, err)
	}
	return vehicles, nil
}
