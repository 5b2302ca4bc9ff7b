package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jonathan/ats-analyzer/internal/schemas"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Registry holds the immutable scoring configuration: per-category keyword
// vocabularies, company requirement profiles, and the two weight tables.
// It is built once at startup and shared read-only across analyses.
type Registry struct {
	categories      map[string]*types.JobCategoryConfig
	companies       map[string]*types.CompanyJobRequirements
	categoryWeights types.CriteriaWeights
	criteriaWeights types.CriteriaWeights
}

// registryFile is the on-disk shape of a scoring registry document.
type registryFile struct {
	CategoryWeights types.CriteriaWeights     `json:"category_weights,omitempty"`
	CriteriaWeights types.CriteriaWeights     `json:"criteria_weights,omitempty"`
	Categories      []types.JobCategoryConfig `json:"categories,omitempty"`
	Companies       []companyEntry            `json:"companies,omitempty"`
}

type companyEntry struct {
	JobCategory string `json:"job_category"`
	types.CompanyJobRequirements
}

// DefaultRegistry returns the built-in configuration: the four stock
// category vocabularies, the general fallback with empty keyword sets, the
// default weight tables, and no company profiles.
func DefaultRegistry() *Registry {
	r := &Registry{
		categories: make(map[string]*types.JobCategoryConfig),
		companies:  make(map[string]*types.CompanyJobRequirements),
		categoryWeights: types.CriteriaWeights{
			types.CategoryKeywordMatching:     30,
			types.CategoryFormatCompatibility: 25,
			types.CategoryReadability:         20,
			types.CategoryStructure:           15,
			types.CategoryContactInformation:  10,
		},
		criteriaWeights: types.CriteriaWeights{
			types.CriterionKeywordRelevance:    30,
			types.CriterionATSCompatibility:    25,
			types.CriterionExperienceLevel:     20,
			types.CriterionSkillsMatch:         15,
			types.CriterionEducationBackground: 10,
		},
	}
	for i := range defaultCategories {
		cfg := defaultCategories[i]
		r.categories[cfg.Name] = &cfg
	}
	return r
}

// LoadFile merges a registry document into the registry. The document is
// validated against the registry JSON Schema before unmarshalling; weight
// tables must sum to exactly 100. Loaded categories and companies replace
// same-named defaults.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	if err := schemas.ValidateBytes(schemas.RegistrySchema, data); err != nil {
		return fmt.Errorf("registry file %s: %w", path, err)
	}

	var doc registryFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse registry file %s: %w", path, err)
	}

	if doc.CategoryWeights != nil {
		if err := requireWeightSum("category_weights", doc.CategoryWeights); err != nil {
			return err
		}
		r.categoryWeights = doc.CategoryWeights
	}
	if doc.CriteriaWeights != nil {
		if err := requireWeightSum("criteria_weights", doc.CriteriaWeights); err != nil {
			return err
		}
		r.criteriaWeights = doc.CriteriaWeights
	}

	for i := range doc.Categories {
		cfg := doc.Categories[i]
		r.categories[cfg.Name] = &cfg
	}
	for i := range doc.Companies {
		entry := doc.Companies[i]
		req := entry.CompanyJobRequirements
		if req.Position == "" {
			req.Position = entry.JobCategory
		}
		r.companies[entry.JobCategory] = &req
	}

	return nil
}

// requireWeightSum enforces the load-time invariant that weights sum to 100.
func requireWeightSum(table string, weights types.CriteriaWeights) error {
	if sum := weights.Sum(); sum != 100 {
		return fmt.Errorf("config error: %s must sum to 100, got %d", table, sum)
	}
	return nil
}

// Category looks up a job category configuration, falling back to the
// general default for unknown keys. The fallback is a deliberate branch:
// the general category exists explicitly with empty keyword sets.
func (r *Registry) Category(key string) *types.JobCategoryConfig {
	if cfg, ok := r.categories[key]; ok {
		return cfg
	}
	return r.categories[types.GeneralCategory]
}

// Company returns the company requirements profile for a job category, if
// one is configured. Absent a profile the caller falls back to the general
// ATS analysis alone.
func (r *Registry) Company(key string) (*types.CompanyJobRequirements, bool) {
	req, ok := r.companies[key]
	return req, ok
}

// CategoryNames returns the configured category keys in sorted order.
func (r *Registry) CategoryNames() []string {
	names := make([]string, 0, len(r.categories))
	for name := range r.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryWeights returns the weight table for the general ATS aggregation.
func (r *Registry) CategoryWeights() types.CriteriaWeights {
	return r.categoryWeights
}

// CriteriaWeights returns the weight table for company evaluation.
func (r *Registry) CriteriaWeights() types.CriteriaWeights {
	return r.criteriaWeights
}

// DetectionVocabularies returns each configured category's combined keyword
// lists, used by automatic category detection. The general category is
// excluded; it is the fallback when nothing matches.
func (r *Registry) DetectionVocabularies() map[string][]string {
	vocabularies := make(map[string][]string, len(r.categories))
	for name, cfg := range r.categories {
		if name == types.GeneralCategory {
			continue
		}
		vocab := make([]string, 0, len(cfg.RequiredKeywords)+len(cfg.PreferredKeywords))
		vocab = append(vocab, cfg.RequiredKeywords...)
		vocab = append(vocab, cfg.PreferredKeywords...)
		vocabularies[name] = vocab
	}
	return vocabularies
}
