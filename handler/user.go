package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/handler/schema"
	"github.com/lambda-feedback/greeter/internal/pipeline"
)

// ErrMissingFields is returned when a user request lacks a name or email.
var ErrMissingFields = pipeline.Error(
	http.StatusBadRequest,
	"Missing required fields: name and email",
)

type UserHandlerParams struct {
	fx.In

	Schema *schema.Schema
	Log    *zap.Logger
}

type UserHandler struct {
	schema *schema.Schema
	log    *zap.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		schema: params.Schema,
		log:    params.Log,
	}
}

type greeting struct {
	Message string `json:"message"`
}

// Greet answers POST /user with a greeting for the posted name. The email
// must be present but is otherwise unused.
func (h *UserHandler) Greet(w http.ResponseWriter, r *http.Request) error {
	body := pipeline.Body(r)

	result, err := h.schema.Validate(body)
	if err != nil {
		return fmt.Errorf("failed to validate user request: %w", err)
	}

	if !result.Valid() {
		h.log.Debug("invalid user request", zap.Stringers("errors", result.Errors()))
		return ErrMissingFields
	}

	message := fmt.Sprintf("Hello, %s!", templateString(body["name"]))

	if err := pipeline.JSON(w, http.StatusOK, greeting{Message: message}); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}

	return nil
}

// Profile answers GET /user/{id}. The id is used verbatim.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) error {
	body := fmt.Sprintf("User %s profile", r.PathValue("id"))

	if err := pipeline.Text(w, http.StatusOK, body); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}

	return nil
}
