package repository

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// Signature is a saved contact record owned by a user.
type Signature struct {
	ID        uuid.UUID               `json:"id"`
	OwnerID   uuid.UUID               `json:"ownerId"`
	Title     string                  `json:"title"`
	Record    signature.ContactRecord `json:"record"`
	IsDefault bool                    `json:"isDefault"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// TemplateID returns the template the signature renders with.
func (s Signature) TemplateID() string {
	return s.Record.TemplateID
}

// Profile holds the default contact values of a user.
type Profile struct {
	UserID    uuid.UUID               `json:"userId"`
	Record    signature.ContactRecord `json:"record"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// Apply fills the empty fields of rec from the profile. Fields already set on
// rec are kept, and map entries from rec win over profile entries.
func (p Profile) Apply(rec signature.ContactRecord) signature.ContactRecord {
	d := p.Record
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&rec.Name, d.Name)
	fill(&rec.Email, d.Email)
	fill(&rec.Title, d.Title)
	fill(&rec.Company, d.Company)
	fill(&rec.Department, d.Department)
	fill(&rec.Address, d.Address)
	fill(&rec.Phone, d.Phone)
	fill(&rec.MobilePhone, d.MobilePhone)
	fill(&rec.OfficePhone, d.OfficePhone)
	fill(&rec.Website, d.Website)
	fill(&rec.LogoData, d.LogoData)
	fill(&rec.PrimaryColor, d.PrimaryColor)
	fill(&rec.SecondaryColor, d.SecondaryColor)
	fill(&rec.TemplateID, d.TemplateID)

	rec.SocialLinks = mergeMap(d.SocialLinks, rec.SocialLinks)
	rec.AdditionalFields = mergeMap(d.AdditionalFields, rec.AdditionalFields)
	rec.CustomStyles = mergeMap(d.CustomStyles, rec.CustomStyles)
	return rec
}

func mergeMap(base, override map[string]string) map[string]string {
	if len(base) == 0 {
		return override
	}
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// TestData is a named contact record used to preview templates.
type TestData struct {
	ID        uuid.UUID               `json:"id"`
	OwnerID   uuid.UUID               `json:"ownerId"`
	Name      string                  `json:"name"`
	Record    signature.ContactRecord `json:"record"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
