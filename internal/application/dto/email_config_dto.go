package dto

import "github.com/forgeit/astrolabe-qualif/internal/domain/template"

// UpdateEmailConfigRequest entrée de PUT /config/email-templates. Les templates
// arrivent en forme brute: la normalisation s'applique avant persistance.
type UpdateEmailConfigRequest struct {
	Version   string                  `json:"version,omitempty"`
	Templates map[string]template.Raw `json:"templates"`
}
