package terminology

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/gofhir/fhir/r4"
)

// LoadStats counts what a load call registered.
type LoadStats struct {
	CodeSystems int
	ValueSets   int
	Errors      int
}

func (s *LoadStats) add(o LoadStats) {
	s.CodeSystems += o.CodeSystems
	s.ValueSets += o.ValueSets
	s.Errors += o.Errors
}

// LoadJSON loads a ValueSet, a CodeSystem or a Bundle of them. Bundle
// entries of other kinds are ignored; CodeSystems in a bundle are loaded
// before its ValueSets so filters can expand.
func (s *InMemory) LoadJSON(data []byte) (LoadStats, error) {
	kind, err := jsonparser.GetString(data, "resourceType")
	if err != nil {
		return LoadStats{}, fmt.Errorf("invalid terminology resource: %w", err)
	}

	switch kind {
	case "Bundle":
		return s.loadBundle(data)
	case "CodeSystem", "ValueSet":
		return s.loadOne(kind, data)
	}
	return LoadStats{}, fmt.Errorf("unsupported resourceType: %s", kind)
}

func (s *InMemory) loadOne(kind string, data []byte) (LoadStats, error) {
	switch kind {
	case "CodeSystem":
		var cs r4.CodeSystem
		if err := json.Unmarshal(data, &cs); err != nil {
			return LoadStats{Errors: 1}, fmt.Errorf("failed to parse CodeSystem: %w", err)
		}
		if err := s.LoadCodeSystem(&cs); err != nil {
			return LoadStats{Errors: 1}, err
		}
		return LoadStats{CodeSystems: 1}, nil
	case "ValueSet":
		var vs r4.ValueSet
		if err := json.Unmarshal(data, &vs); err != nil {
			return LoadStats{Errors: 1}, fmt.Errorf("failed to parse ValueSet: %w", err)
		}
		if err := s.LoadValueSet(&vs); err != nil {
			return LoadStats{Errors: 1}, err
		}
		return LoadStats{ValueSets: 1}, nil
	}
	return LoadStats{}, nil
}

func (s *InMemory) loadBundle(data []byte) (LoadStats, error) {
	var codeSystems, valueSets [][]byte
	_, err := jsonparser.ArrayEach(data, func(entry []byte, _ jsonparser.ValueType, _ int, _ error) {
		res, _, _, err := jsonparser.Get(entry, "resource")
		if err != nil {
			return
		}
		switch kind, _ := jsonparser.GetString(res, "resourceType"); kind {
		case "CodeSystem":
			codeSystems = append(codeSystems, res)
		case "ValueSet":
			valueSets = append(valueSets, res)
		}
	}, "entry")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return LoadStats{}, fmt.Errorf("invalid bundle: %w", err)
	}

	var stats LoadStats
	for _, raw := range codeSystems {
		st, _ := s.loadOne("CodeSystem", raw)
		stats.add(st)
	}
	for _, raw := range valueSets {
		st, _ := s.loadOne("ValueSet", raw)
		stats.add(st)
	}
	return stats, nil
}

// LoadFile loads one JSON file.
func (s *InMemory) LoadFile(path string) (LoadStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	stats, err := s.LoadJSON(data)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}

// LoadDirectory loads the CodeSystem-*.json and ValueSet-*.json files of a
// package directory, code systems first.
func (s *InMemory) LoadDirectory(dir string) (LoadStats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to read directory: %w", err)
	}

	var codeSystems, valueSets []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		switch {
		case strings.HasPrefix(name, "CodeSystem-"):
			codeSystems = append(codeSystems, filepath.Join(dir, name))
		case strings.HasPrefix(name, "ValueSet-"):
			valueSets = append(valueSets, filepath.Join(dir, name))
		}
	}

	var stats LoadStats
	for _, path := range append(codeSystems, valueSets...) {
		st, err := s.LoadFile(path)
		if err != nil {
			stats.Errors++
			continue
		}
		stats.add(st)
	}
	return stats, nil
}
