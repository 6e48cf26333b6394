package models

import "errors"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.Date.IsZero() {
		p.Date = Today()
	}
	if p.Excerpt == "" {
		p.Excerpt = Excerpt(p.Content, ExcerptLength)
	}
	if p.Source == "" {
		p.Source = SourceLocal
	}
}

// IsOrigin reports whether the post came from the read-only seed collection.
func (p *Post) IsOrigin() bool {
	return p.Source == SourceOrigin
}
