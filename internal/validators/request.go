package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/brand-snap/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldCredential = "credential"
	FieldTitle      = "title"
	FieldPurpose    = "purpose"
	FieldPrompt     = "prompt"
	FieldUserID     = "user_id"
	FieldProjectID  = "project_id"
	FieldCampaignID = "campaign_id"
)

// maxVarcharLen matches the VARCHAR(255) columns of the schema.
const maxVarcharLen = 255

// RequestValidator implements Validator for the account, project, campaign
// and asset request models. Both value and pointer forms are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When no fields are given
// a default set per type is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.GoogleLoginRequest:
		return v.validateGoogleLogin(value, fields...)
	case *models.GoogleLoginRequest:
		return v.validateGoogleLogin(*value, fields...)

	case models.Project:
		return v.validateProject(value, fields...)
	case *models.Project:
		return v.validateProject(*value, fields...)

	case models.Campaign:
		return v.validateCampaign(value, fields...)
	case *models.Campaign:
		return v.validateCampaign(*value, fields...)

	case models.GenerateAssetRequest:
		return v.validateGenerateAsset(value, fields...)
	case *models.GenerateAssetRequest:
		return v.validateGenerateAsset(*value, fields...)

	case models.UpdateAssetRequest:
		return v.validateUpdateAsset(value, fields...)
	case *models.UpdateAssetRequest:
		return v.validateUpdateAsset(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := requireText(r.Username, ErrEmptyUsername, FieldUsername); err != nil {
				return err
			}
			// token subjects are resolved as usernames before emails
			if strings.ContainsRune(r.Username, '@') {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if err := requireText(r.Email, ErrEmptyEmail, FieldEmail); err != nil {
				return err
			}
			if !isEmail(r.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(r.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateGoogleLogin(r models.GoogleLoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredential}
	}

	for _, f := range fields {
		switch f {
		case FieldCredential:
			if strings.TrimSpace(r.Credential) == "" {
				return ErrEmptyCredential
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateProject(p models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := requireText(p.Title, ErrEmptyTitle, FieldTitle); err != nil {
				return err
			}
		case FieldUserID:
			if p.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCampaign(c models.Campaign, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPurpose, FieldProjectID}
	}

	for _, f := range fields {
		switch f {
		case FieldPurpose:
			if err := requireText(c.Purpose, ErrEmptyPurpose, FieldPurpose); err != nil {
				return err
			}
		case FieldProjectID:
			if c.ProjectID <= 0 {
				return ErrInvalidProjectID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateGenerateAsset(r models.GenerateAssetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCampaignID, FieldPrompt}
	}

	for _, f := range fields {
		switch f {
		case FieldCampaignID:
			if r.CampaignID <= 0 {
				return ErrInvalidCampaignID
			}
		case FieldPrompt:
			if strings.TrimSpace(r.Prompt) == "" {
				return ErrEmptyPrompt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateAsset(r models.UpdateAssetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompt}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if strings.TrimSpace(r.Prompt) == "" {
				return ErrEmptyPrompt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// requireText rejects blank values and values longer than a VARCHAR column.
func requireText(s string, emptyErr error, field string) error {
	if strings.TrimSpace(s) == "" {
		return emptyErr
	}
	if utf8.RuneCountInString(s) > maxVarcharLen {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrTooLong, field, maxVarcharLen)
	}
	return nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
