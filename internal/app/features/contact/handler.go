// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	contactstore "github.com/dalemusser/propertyhub/internal/app/store/contacts"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler accepts contact form messages.
type Handler struct {
	Contacts *contactstore.Store
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Contacts: contactstore.New(db),
		ErrLog:   errLog,
		Log:      logger,
	}
}

type contactInput struct {
	Name    string `json:"name" validate:"required,max=200" label:"Name"`
	Email   string `json:"email" validate:"required,email,max=254" label:"Email"`
	Phone   string `json:"phone" validate:"max=50" label:"Phone"`
	Subject string `json:"subject" validate:"max=200" label:"Subject"`
	Message string `json:"message" validate:"required,max=10000" label:"Message"`
}

// HandleSubmit handles POST /contact.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode contact body", err, "Invalid request body.")
		return
	}
	in.Name = normalize.Name(in.Name)
	in.Email = normalize.Email(in.Email)
	in.Message = htmlsanitize.StripTags(in.Message)
	if res := inputval.Validate(in); res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Contacts.Create(ctx, models.ContactForm{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save contact form", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusCreated, c)
}

// HandleList handles GET /contact.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Contacts.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list contact forms", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, all)
}
