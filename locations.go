package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// loadLocations reads the locations file: a JSON array of entries with a
// place name, coordinates and a language code for the forecast descriptions.
// Every entry is validated before any network call is made, so a bad file
// aborts the run up front.
func loadLocations(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open locations file: %w", err)
	}
	defer f.Close()

	var locations []Location
	if err := json.NewDecoder(f).Decode(&locations); err != nil {
		return nil, fmt.Errorf("could not decode locations file %s: %w", path, err)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("locations file %s contains no locations", path)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	for i, location := range locations {
		if err := validate.Struct(location); err != nil {
			return nil, fmt.Errorf("invalid location at index %d (%q): %w", i, location.Place, err)
		}
	}

	return locations, nil
}
