package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"helpcenter/internal/domain"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	localeRegex = regexp.MustCompile(`^[a-z]{2}(-[A-Za-z]{2})?$`)

	validStatus        = []interface{}{domain.StatusDraft, domain.StatusPublished, domain.StatusArchived}
	validAccountStatus = []interface{}{domain.AccountStatusActive, domain.AccountStatusSuspended}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article entity. It is applied to the full
// record, both on create and after a partial update has been merged.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 255).Error("title_too_long"),
		),
		validation.Field(&a.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&a.AuthorID,
			validation.Required.Error("author_id_required"),
			is.UUIDv4.Error("invalid_author_id"),
		),
		validation.Field(&a.Locale,
			validation.Required.Error("locale_required"),
			validation.Match(localeRegex).Error("invalid_locale_format"),
		),
		validation.Field(&a.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
		validation.Field(&a.Position,
			validation.Min(0).Error("invalid_position"),
		),
	)
}

// ValidateCategory validates a Category entity.
func (v *Validator) ValidateCategory(c *domain.Category) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&c.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&c.Locale,
			validation.Required.Error("locale_required"),
			validation.Match(localeRegex).Error("invalid_locale_format"),
		),
	)
}

// ValidateAccount validates an Account entity.
func (v *Validator) ValidateAccount(a *domain.Account) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&a.Locale,
			validation.Required.Error("locale_required"),
			validation.Match(localeRegex).Error("invalid_locale_format"),
		),
		validation.Field(&a.Status,
			validation.Required.Error("status_required"),
			validation.In(validAccountStatus...).Error("invalid_status"),
		),
	)
}

// ValidateReorder validates a reorder payload mapping category ids to
// ordered article id lists.
func (v *Validator) ValidateReorder(positions map[string][]string) error {
	if len(positions) == 0 {
		return validation.Errors{
			"positions": validation.NewError("positions_required", "positions mapping must not be empty"),
		}
	}
	for categoryID, articleIDs := range positions {
		if categoryID == "" {
			return validation.Errors{
				"positions": validation.NewError("category_id_required", "category id must not be empty"),
			}
		}
		if len(articleIDs) == 0 {
			return validation.Errors{
				"positions": validation.NewError("article_ids_required", "ordered article id list must not be empty"),
			}
		}
		seen := make(map[string]struct{}, len(articleIDs))
		for _, id := range articleIDs {
			if id == "" {
				return validation.Errors{
					"positions": validation.NewError("article_id_required", "article id must not be empty"),
				}
			}
			if _, dup := seen[id]; dup {
				return validation.Errors{
					"positions": validation.NewError("duplicate_article_id", "article id listed twice for one category"),
				}
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// FieldErrors converts ozzo validation errors to the field -> messages map
// used in API error responses.
func FieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)

	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			fields[field] = append(fields[field], fieldErr.Error())
		}
	} else if err != nil {
		fields["base"] = append(fields["base"], err.Error())
	}

	return fields
}
