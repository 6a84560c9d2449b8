// Package roles exposes the role keyword taxonomy used by
// quality-coach scoring: per-role, per-level typical keywords plus
// level expectations. The table is loaded once at startup, schema
// validated, and never mutated afterward.
package roles

import (
	"fmt"
	"sort"

	"github.com/JoHn11117/resume-scorer/internal/data"
	"github.com/JoHn11117/resume-scorer/internal/schemas"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

// InvalidRoleOrLevelError is returned when a request names a role or
// level the taxonomy does not define.
type InvalidRoleOrLevelError struct {
	Role  string
	Level string
}

func (e *InvalidRoleOrLevelError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("unknown role %q", e.Role)
	}
	return fmt.Sprintf("unknown level %q", e.Level)
}

// LevelExpectation describes what a claimed level implies.
type LevelExpectation struct {
	MinYears         int `json:"min_years"`
	ExpectedVerbTier int `json:"expected_verb_tier"`
}

// ScoringWeights are the per-role category weights for quality-coach
// mode. They sum to 1.
type ScoringWeights struct {
	Keywords float64 `json:"keywords"`
	Content  float64 `json:"content"`
	Format   float64 `json:"format"`
	Polish   float64 `json:"polish"`
}

// Role is one entry in the taxonomy.
type Role struct {
	DisplayName     string                   `json:"display_name"`
	TypicalKeywords map[types.Level][]string `json:"typical_keywords"`
	ScoringWeights  ScoringWeights           `json:"scoring_weights"`
}

type table struct {
	Levels map[types.Level]LevelExpectation `json:"levels"`
	Roles  map[string]Role                  `json:"roles"`
}

// Store is the immutable, process-wide role taxonomy.
type Store struct {
	tbl table
}

// NewStore loads and validates the embedded role table. Call once at
// startup; a validation failure means the build shipped a bad table.
func NewStore() (*Store, error) {
	raw, err := data.Raw("roles.json")
	if err != nil {
		return nil, fmt.Errorf("role table unavailable: %w", err)
	}
	if err := schemas.ValidateTable("roles.schema.json", raw); err != nil {
		return nil, err
	}

	var tbl table
	if err := data.Load("roles.json", &tbl); err != nil {
		return nil, err
	}
	return &Store{tbl: tbl}, nil
}

// Keywords returns the typical keywords for a role at a level.
func (s *Store) Keywords(role string, level types.Level) ([]string, error) {
	r, ok := s.tbl.Roles[role]
	if !ok {
		return nil, &InvalidRoleOrLevelError{Role: role}
	}
	kws, ok := r.TypicalKeywords[level]
	if !ok {
		return nil, &InvalidRoleOrLevelError{Level: string(level)}
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out, nil
}

// Weights returns the quality-coach scoring weights for a role.
func (s *Store) Weights(role string) (ScoringWeights, error) {
	r, ok := s.tbl.Roles[role]
	if !ok {
		return ScoringWeights{}, &InvalidRoleOrLevelError{Role: role}
	}
	return r.ScoringWeights, nil
}

// DisplayName returns the human-readable name for a role.
func (s *Store) DisplayName(role string) (string, error) {
	r, ok := s.tbl.Roles[role]
	if !ok {
		return "", &InvalidRoleOrLevelError{Role: role}
	}
	return r.DisplayName, nil
}

// Expectation returns the level expectation entry.
func (s *Store) Expectation(level types.Level) (LevelExpectation, error) {
	exp, ok := s.tbl.Levels[level]
	if !ok {
		return LevelExpectation{}, &InvalidRoleOrLevelError{Level: string(level)}
	}
	return exp, nil
}

// LevelMinYears flattens the level table into the shape the red-flag
// validator consumes.
func (s *Store) LevelMinYears() map[types.Level]int {
	out := make(map[types.Level]int, len(s.tbl.Levels))
	for level, exp := range s.tbl.Levels {
		out[level] = exp.MinYears
	}
	return out
}

// RoleNames lists the known role identifiers, sorted.
func (s *Store) RoleNames() []string {
	names := make([]string, 0, len(s.tbl.Roles))
	for name := range s.tbl.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasRole reports whether a role identifier is defined.
func (s *Store) HasRole(role string) bool {
	_, ok := s.tbl.Roles[role]
	return ok
}
