package thresholds

import (
	"strings"

	"github.com/upb/answer-gate/models"
	"go.uber.org/zap"
)

// DefaultPersona is the fallback persona used when the caller supplies no
// persona or an unrecognized one. It is the most permissive preset, so a
// configuration typo can over-permit but never block the answering pipeline.
const DefaultPersona = "creator"

// presets are the compiled-in policy tiers. Values are part of the gate's
// compatibility contract and must not drift.
var presets = map[string]models.PersonaThresholds{
	"educator": {
		Persona:             "educator",
		CitationsRequired:   true,
		SimilarityThreshold: 0.80,
		MinSources:          2,
		PrimarySourcesOnly:  false,
		StrictMode:          true,
	},
	"researcher": {
		Persona:             "researcher",
		CitationsRequired:   true,
		SimilarityThreshold: 0.75,
		MinSources:          3,
		PrimarySourcesOnly:  true,
		StrictMode:          true,
	},
	"creator": {
		Persona:             "creator",
		CitationsRequired:   false,
		SimilarityThreshold: 0.60,
		MinSources:          1,
		PrimarySourcesOnly:  false,
		StrictMode:          false,
	},
	"builder": {
		Persona:             "builder",
		CitationsRequired:   false,
		SimilarityThreshold: 0.65,
		MinSources:          1,
		PrimarySourcesOnly:  false,
		StrictMode:          false,
	},
}

// Registry resolves persona identifiers to threshold bundles.
type Registry struct {
	logger *zap.Logger
}

// NewRegistry creates a Registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{logger: logger}
}

// Personas returns the names of all built-in presets.
func Personas() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// Preset returns the named preset bundle. Unknown personas fall back to the
// creator default with a warning; resolution never fails.
func (r *Registry) Preset(persona string) models.PersonaThresholds {
	name := strings.ToLower(strings.TrimSpace(persona))
	if name == "" {
		return presets[DefaultPersona]
	}
	if preset, ok := presets[name]; ok {
		return preset
	}
	r.logger.Warn("unknown persona, falling back to default thresholds",
		zap.String("persona", persona),
		zap.String("fallback", DefaultPersona))
	return presets[DefaultPersona]
}

// Resolve produces the effective thresholds for a request.
//
// Precedence, highest first: a caller-supplied custom bundle is used verbatim
// with no merging; otherwise the persona preset is looked up and any toggles
// are applied on top (toggles tighten only, see models.Toggles); with no
// persona the creator default applies.
func (r *Registry) Resolve(persona string, toggles *models.Toggles, custom *models.PersonaThresholds) models.PersonaThresholds {
	if custom != nil {
		return *custom
	}
	resolved := r.Preset(persona)
	if toggles != nil {
		resolved = toggles.Apply(resolved)
	}
	return resolved
}
