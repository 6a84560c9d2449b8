// Package engine wires the parsing, extraction, and scoring components
// into the two external operations: ParseAndScore for a fresh upload
// and Rescore for an edited working copy.
package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JoHn11117/resume-scorer/internal/analysis"
	"github.com/JoHn11117/resume-scorer/internal/keywords"
	"github.com/JoHn11117/resume-scorer/internal/parser"
	"github.com/JoHn11117/resume-scorer/internal/redflags"
	"github.com/JoHn11117/resume-scorer/internal/roles"
	"github.com/JoHn11117/resume-scorer/internal/scoring"
	"github.com/JoHn11117/resume-scorer/internal/sections"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

// Defaults applied when a request leaves role or level unset.
const (
	DefaultRole  = "software_engineer"
	DefaultLevel = types.LevelMid
)

// Options collects the tunable configuration of every component.
type Options struct {
	Parser   parser.Config
	Keywords keywords.ExtractorConfig
	Matcher  keywords.MatcherConfig
	RedFlags redflags.Config
	Scoring  scoring.Config
}

// DefaultOptions returns the calibrated defaults for every component.
func DefaultOptions() Options {
	return Options{
		Parser:   parser.DefaultConfig(),
		Keywords: keywords.DefaultExtractorConfig(),
		Matcher:  keywords.DefaultMatcherConfig(),
		RedFlags: redflags.DefaultConfig(),
		Scoring:  scoring.DefaultConfig(),
	}
}

// Engine is the top-level scoring pipeline. Safe for concurrent use;
// all shared state is read-only after New.
type Engine struct {
	parser    *parser.Parser
	extractor *sections.Extractor
	keywords  *keywords.Extractor
	matcher   *keywords.Matcher
	validator *redflags.Validator
	roles     *roles.Store
	scorer    *scoring.Scorer
}

// New loads the static tables and builds the pipeline. Fails if any
// embedded table is missing or does not satisfy its schema.
func New(opts Options) (*Engine, error) {
	roleStore, err := roles.NewStore()
	if err != nil {
		return nil, fmt.Errorf("loading role tables: %w", err)
	}

	kwExtractor, err := keywords.LoadExtractor(opts.Keywords)
	if err != nil {
		return nil, fmt.Errorf("loading term tables: %w", err)
	}

	synonyms, err := keywords.LoadSynonymTable()
	if err != nil {
		return nil, fmt.Errorf("loading synonym table: %w", err)
	}

	redCfg := opts.RedFlags
	if redCfg.LevelMinYears == nil {
		redCfg.LevelMinYears = roleStore.LevelMinYears()
	}

	return &Engine{
		parser:    parser.New(opts.Parser),
		extractor: sections.NewExtractor(),
		keywords:  kwExtractor,
		matcher:   keywords.NewMatcher(opts.Matcher, synonyms),
		validator: redflags.NewValidator(redCfg),
		roles:     roleStore,
		scorer:    scoring.NewScorer(opts.Scoring),
	}, nil
}

// ScoreRequest describes one scoring call.
type ScoreRequest struct {
	Document       []byte
	Format         types.Format
	JobDescription string
	Role           string
	Level          types.Level
	Mode           types.ScoringMode
}

// ScoreResponse pairs the score with the extracted facts so callers
// can render both without re-parsing.
type ScoreResponse struct {
	Result *types.ScoreResult
	Facts  *types.ResumeFacts
}

// ParseAndScore parses an uploaded document and scores it. Parsing
// failures surface as typed parser errors; an unknown role or level
// fails before any parsing work.
func (e *Engine) ParseAndScore(ctx context.Context, req ScoreRequest) (*ScoreResponse, error) {
	role, level, err := e.resolveRoleLevel(req.Role, req.Level)
	if err != nil {
		return nil, err
	}

	doc, err := e.parser.Parse(req.Document, req.Format)
	if err != nil {
		return nil, err
	}

	return e.score(ctx, doc, req, role, level)
}

// Rescore scores an edited working copy. The text is the session's
// current plain-text document, so parsing reduces to the text strategy.
func (e *Engine) Rescore(ctx context.Context, text string, req ScoreRequest) (*ScoreResponse, error) {
	role, level, err := e.resolveRoleLevel(req.Role, req.Level)
	if err != nil {
		return nil, err
	}

	doc, err := e.parser.Parse([]byte(text), types.FormatTXT)
	if err != nil {
		return nil, err
	}

	return e.score(ctx, doc, req, role, level)
}

func (e *Engine) resolveRoleLevel(role string, level types.Level) (string, types.Level, error) {
	if role == "" {
		role = DefaultRole
	}
	if level == "" {
		level = DefaultLevel
	}
	if !e.roles.HasRole(role) {
		return "", "", &roles.InvalidRoleOrLevelError{Role: role}
	}
	if _, err := e.roles.Expectation(level); err != nil {
		return "", "", err
	}
	return role, level, nil
}

func (e *Engine) score(ctx context.Context, doc *types.ParsedDocument, req ScoreRequest, role string, level types.Level) (*ScoreResponse, error) {
	mode := scoring.ResolveMode(req.Mode, req.JobDescription != "")

	// Documents with almost no extractable text get a minimal result
	// instead of misleading sub-scores.
	if doc.WordCount() < e.parser.MinWordCount() {
		return &ScoreResponse{
			Result: minimalResult(mode, doc),
			Facts:  &types.ResumeFacts{RawText: doc.Text(), WordCount: doc.WordCount(), ParseConfidence: doc.Confidence},
		}, nil
	}

	secs := sections.Detect(doc)
	facts := e.extractor.ExtractFacts(doc, secs)

	inputs := scoring.Inputs{Doc: doc, Facts: facts}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		inputs.Content = e.analyzeContent(facts, level)
		return nil
	})
	g.Go(func() error {
		inputs.RedFlagIssues = e.validator.Validate(facts, level)
		return nil
	})
	g.Go(func() error {
		return e.matchKeywords(&inputs, mode, req.JobDescription, facts, role, level)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ScoreResponse{
		Result: e.scorer.Score(mode, inputs),
		Facts:  facts,
	}, nil
}

// analyzeContent scores the experience bullets, falling back to the
// summary when the resume has no bullet points at all.
func (e *Engine) analyzeContent(facts *types.ResumeFacts, level types.Level) types.AchievementScore {
	bullets := facts.AllBullets()
	if len(bullets) > 0 {
		return analysis.ScoreAchievements(bullets, types.SectionExperience, level)
	}
	if facts.Summary != "" {
		return analysis.ScoreAchievements([]string{facts.Summary}, types.SectionSummary, level)
	}
	return types.AchievementScore{}
}

func (e *Engine) matchKeywords(inputs *scoring.Inputs, mode types.ScoringMode, jobDescription string, facts *types.ResumeFacts, role string, level types.Level) error {
	if mode == types.ModeATSSimulation {
		set := e.keywords.Extract(jobDescription)
		required := e.matcher.MatchAll(set.Required, facts.RawText)
		preferred := e.matcher.MatchAll(set.Preferred, facts.RawText)
		inputs.Required = &required
		inputs.Preferred = &preferred
		return nil
	}

	typical, err := e.roles.Keywords(role, level)
	if err != nil {
		return err
	}
	match := e.matcher.MatchAll(typical, facts.RawText)
	inputs.RoleMatch = &match

	weights, err := e.roles.Weights(role)
	if err != nil {
		return err
	}
	inputs.RoleWeights = &weights
	return nil
}

func minimalResult(mode types.ScoringMode, doc *types.ParsedDocument) *types.ScoreResult {
	issue := types.Issue{
		Severity: types.SeverityCritical,
		Category: "format",
		Message:  fmt.Sprintf("Document contains too little readable text to score (%d words)", doc.WordCount()),
	}
	return &types.ScoreResult{
		OverallScore: 0,
		Mode:         mode,
		Breakdown:    map[string]types.CategoryScore{},
		Issues:       types.GroupIssues([]types.Issue{issue}),
		AutoReject:   mode == types.ModeATSSimulation,
	}
}
