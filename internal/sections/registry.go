package sections

import "github.com/mbarbosa/cvgen/internal/styles"

// DefaultOrder is the fixed section order used when the CV document does not
// declare a sections list.
var DefaultOrder = []string{
	"experience",
	"education",
	"core_skills",
	"skills",
	"languages",
	"awards",
	"certifications",
}

// Registry maps section type names to formatters. Instances are scoped to
// one document and one language.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry builds the formatter set for a generation run.
func NewRegistry(language string, translations map[string]any, engine *styles.Engine) *Registry {
	ctx := &formatterContext{
		language:     language,
		translations: translations,
		engine:       engine,
	}
	return &Registry{
		formatters: map[string]Formatter{
			"experience":     &experienceFormatter{ctx: ctx},
			"education":      &educationFormatter{ctx: ctx},
			"core_skills":    &coreSkillsFormatter{ctx: ctx},
			"skills":         &skillsFormatter{ctx: ctx},
			"languages":      &languagesFormatter{ctx: ctx},
			"awards":         &awardsFormatter{ctx: ctx},
			"certifications": &certificationsFormatter{ctx: ctx},
		},
	}
}

// Get returns the formatter for a section type, or nil when the type is
// unknown. Callers skip unknown types with a warning rather than failing the
// whole document.
func (r *Registry) Get(sectionType string) Formatter {
	return r.formatters[sectionType]
}
