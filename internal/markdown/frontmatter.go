package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// PageFrontMatter is the metadata envelope carried by every page markdown
// file. The body below the delimiter is the localized content fragment for
// the language named by Lang.
type PageFrontMatter struct {
	Code          string `yaml:"code"`
	Lang          string `yaml:"lang"`
	CaptionUA     string `yaml:"caption_ua"`
	CaptionEN     string `yaml:"caption_en"`
	IntroUA       string `yaml:"intro_ua"`
	IntroEN       string `yaml:"intro_en"`
	ImageURL      string `yaml:"image_url"`
	ParentCode    string `yaml:"parent_code"`
	AliasOf       string `yaml:"alias_of"`
	OrderNum      *int   `yaml:"order_num"`
	OrderType     string `yaml:"order_type"`
	ContainerType string `yaml:"container_type"`
}

const frontMatterSchema = `{
	"type": "object",
	"properties": {
		"code": {"type": "string", "minLength": 1},
		"lang": {"type": "string", "enum": ["ua", "en"]},
		"caption_ua": {"type": "string"},
		"caption_en": {"type": "string"},
		"intro_ua": {"type": "string"},
		"intro_en": {"type": "string"},
		"image_url": {"type": "string"},
		"parent_code": {"type": "string"},
		"alias_of": {"type": "string"},
		"order_num": {"type": "integer"},
		"order_type": {"type": "string", "enum": ["CREATION_DATE", "UPDATE_DATE", "DEFAULT"]},
		"container_type": {"type": "string", "enum": ["GRID", "LIST"]}
	},
	"required": ["code", "lang"],
	"additionalProperties": true
}`

var compiledSchema = jsonschema.MustCompileString("page-frontmatter.json", frontMatterSchema)

// ParseFrontMatter extracts the metadata envelope and the markdown body from
// the source bytes, validating the envelope against the page schema.
func ParseFrontMatter(source []byte) (PageFrontMatter, []byte, error) {
	var raw map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return PageFrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if err := compiledSchema.Validate(normalizeForSchema(raw)); err != nil {
		return PageFrontMatter{}, nil, fmt.Errorf("validate frontmatter: %w", err)
	}

	var meta PageFrontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(source), &meta); err != nil {
		return PageFrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	meta.Code = strings.TrimSpace(meta.Code)
	meta.Lang = strings.ToLower(strings.TrimSpace(meta.Lang))

	return meta, body, nil
}

// normalizeForSchema coerces YAML decode artifacts into the shapes the JSON
// schema validator expects.
func normalizeForSchema(raw map[string]any) map[string]any {
	if raw == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		switch typed := value.(type) {
		case int:
			out[key] = float64(typed)
		default:
			out[key] = value
		}
	}
	return out
}
