package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	app_errors "omnichat/client/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateRequest checks payload against its `validate` tags and returns a
// wrapped ErrValidation listing every failed field.
func validateRequest(payload interface{}) error {
	err := getInstance().Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}

// decodeAndValidate reads a JSON body into dst and validates it. An empty
// body leaves dst at its zero value before validation.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation)
	}
	return validateRequest(dst)
}

// Request DTOs

type CreateConversationRequest struct {
	Title string `json:"title" validate:"max=200" example:"Release planning"`
}

type CloneConversationRequest struct {
	Title string `json:"title" validate:"max=200"`
}

type ExportConversationRequest struct {
	Path string `json:"path" validate:"required" example:"/home/me/chat.md"`
}

type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200" example:"My Custom Chat Title"`
}

type UpdatePinnedRequest struct {
	Pinned *bool `json:"pinned" validate:"required"`
}

type UpdateTagsRequest struct {
	Tags []string `json:"tags" validate:"max=20,dive,max=50"`
}

// UpdateFolderRequest moves a conversation; a null or blank folder removes it from any folder.
type UpdateFolderRequest struct {
	Folder *string `json:"folder" validate:"omitempty,max=100"`
}

type SendMessageRequest struct {
	Content  string `json:"content" validate:"required" example:"Summarize the attached notes"`
	Provider string `json:"provider" validate:"required" example:"anthropic"`
	Model    string `json:"model" example:"claude-sonnet-4-20250514"`
	Blocking bool   `json:"blocking"`
}

type GenerateRequest struct {
	Provider string `json:"provider" validate:"required" example:"openai"`
	Model    string `json:"model" example:"gpt-4o"`
}

type EditMessageRequest struct {
	Content  string `json:"content" validate:"required"`
	Provider string `json:"provider" validate:"required"`
	Model    string `json:"model"`
}

type SelectBucketsRequest struct {
	BucketIDs []string `json:"bucket_ids" validate:"dive,required"`
}

type ActivateLicenseRequest struct {
	LicenseKey string `json:"license_key" validate:"required" example:"38b1460a-5104-4067-a91d-77b872934d51"`
}

type SetAPIKeyRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// TranscriptionRequest carries base64-encoded WAV audio.
type TranscriptionRequest struct {
	Audio string `json:"audio" validate:"required,base64"`
}
