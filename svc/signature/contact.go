package signature

import (
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/sanitizer"
	"github.com/dmitrymomot/signaturecraft/pkg/validator"
)

// Placeholder copy used when required fields are missing.
const (
	PlaceholderName  = "Your Name"
	PlaceholderEmail = "email@company.com"
)

const (
	maxFieldLength = 256
	hexColorRegex  = `^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`
)

// MaxLogoBytes is the largest logo image, before encoding, that LogoData can
// carry. Logo uploads are capped at the same size.
const MaxLogoBytes = 2 << 20

// logoDataPrefix is the longest data URI prefix of an accepted image type.
const logoDataPrefix = "data:image/webp;base64,"

// MaxLogoDataLength is the length of a base64 data URI holding MaxLogoBytes.
const MaxLogoDataLength = (MaxLogoBytes+2)/3*4 + len(logoDataPrefix)

// ContactRecord is the content and styling of one signature.
// Renderers treat it as read-only input.
type ContactRecord struct {
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Title            string            `json:"title,omitempty"`
	Company          string            `json:"company,omitempty"`
	Department       string            `json:"department,omitempty"`
	Address          string            `json:"address,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	MobilePhone      string            `json:"mobilePhone,omitempty"`
	OfficePhone      string            `json:"officePhone,omitempty"`
	Website          string            `json:"website,omitempty"`
	LogoData         string            `json:"logoData,omitempty"`
	PrimaryColor     string            `json:"primaryColor,omitempty"`
	SecondaryColor   string            `json:"secondaryColor,omitempty"`
	SocialLinks      map[string]string `json:"socialLinks,omitempty"`
	AdditionalFields map[string]string `json:"additionalFields,omitempty"`
	CustomStyles     map[string]string `json:"customStyles,omitempty"`
	TemplateID       string            `json:"templateId"`
}

// IsComplete reports whether the record has both required fields and can be saved.
func (r ContactRecord) IsComplete() bool {
	return strings.TrimSpace(r.Name) != "" && strings.TrimSpace(r.Email) != ""
}

// PhoneNumber returns the primary phone, falling back to the mobile phone.
func (r ContactRecord) PhoneNumber() string {
	if p := strings.TrimSpace(r.Phone); p != "" {
		return p
	}
	return strings.TrimSpace(r.MobilePhone)
}

// HasSocialLinks reports whether at least one social link has a non-empty value.
func (r ContactRecord) HasSocialLinks() bool {
	for _, v := range r.SocialLinks {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Sanitize returns a copy with whitespace and control characters cleaned,
// the email lower-cased, colours normalized and empty map entries dropped.
// LogoData is left untouched.
func (r ContactRecord) Sanitize() ContactRecord {
	out := r
	for _, f := range []*string{
		&out.Name, &out.Title, &out.Company, &out.Department, &out.Address, &out.Website,
	} {
		*f = sanitizer.SingleLine(*f)
	}
	out.Email = sanitizer.NormalizeEmail(out.Email)
	out.Phone = sanitizer.NormalizePhone(out.Phone)
	out.MobilePhone = sanitizer.NormalizePhone(out.MobilePhone)
	out.OfficePhone = sanitizer.NormalizePhone(out.OfficePhone)
	out.PrimaryColor = sanitizer.NormalizeHexColor(out.PrimaryColor)
	out.SecondaryColor = sanitizer.NormalizeHexColor(out.SecondaryColor)
	out.TemplateID = strings.ToLower(strings.TrimSpace(out.TemplateID))
	out.LogoData = strings.TrimSpace(out.LogoData)
	out.SocialLinks = sanitizer.CleanStringMap(r.SocialLinks, strings.ToLower)
	out.AdditionalFields = sanitizer.CleanStringMap(r.AdditionalFields, nil)
	out.CustomStyles = sanitizer.CleanStringMap(r.CustomStyles, nil)
	return out
}

// Validate checks the record at the API boundary.
// Renderers never call it: they accept any record.
func (r ContactRecord) Validate() error {
	rules := []validator.Rule{
		validator.RequiredString("name", r.Name),
		validator.ValidEmail("email", strings.TrimSpace(r.Email)),
	}
	return validator.Apply(append(rules, r.formatRules()...)...)
}

// ValidatePartial is Validate without the required fields. Profiles and test
// data may hold incomplete records.
func (r ContactRecord) ValidatePartial() error {
	rules := validator.When(strings.TrimSpace(r.Email) != "",
		validator.ValidEmail("email", strings.TrimSpace(r.Email)),
	)
	return validator.Apply(append(rules, r.formatRules()...)...)
}

func (r ContactRecord) formatRules() []validator.Rule {
	var rules []validator.Rule
	for _, f := range [][2]string{
		{"name", r.Name},
		{"title", r.Title},
		{"company", r.Company},
		{"department", r.Department},
		{"address", r.Address},
		{"phone", r.Phone},
		{"mobilePhone", r.MobilePhone},
		{"officePhone", r.OfficePhone},
		{"website", r.Website},
	} {
		rules = append(rules, validator.MaxLenString(f[0], f[1], maxFieldLength))
	}

	if r.PrimaryColor != "" {
		rules = append(rules, validator.MatchesRegex("primaryColor", r.PrimaryColor, hexColorRegex, "hex color"))
	}
	if r.SecondaryColor != "" {
		rules = append(rules, validator.MatchesRegex("secondaryColor", r.SecondaryColor, hexColorRegex, "hex color"))
	}
	if r.LogoData != "" {
		rules = append(rules,
			validator.StartsWithPattern("logoData", r.LogoData, "data:image/"),
			validator.MaxLenString("logoData", r.LogoData, MaxLogoDataLength),
		)
	}
	if r.TemplateID != "" {
		rules = append(rules, validator.InListString("templateId", r.TemplateID, TemplateIDs()))
	}
	return rules
}
