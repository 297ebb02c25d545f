package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/response"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

type backupService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) error
	Clear(ctx context.Context)
}

type remindersService interface {
	Run(ctx context.Context) (dto.ReminderRun, error)
}

type dataHandlers struct {
	ResponseHandler response.ResponseHandler
	BackupSvc       backupService
	RemindersSvc    remindersService
}

func NewDataHandlers(deps *Deps) *dataHandlers {
	return &dataHandlers{
		ResponseHandler: deps.ResponseHandler,
		BackupSvc:       deps.BackupSvc,
		RemindersSvc:    deps.RemindersSvc,
	}
}

func (h *dataHandlers) DataRoutes(r chi.Router) {
	r.Get("/backup", h.Export)
	r.Post("/backup", h.Import)
	r.Delete("/data", h.Clear)
	r.Post("/login", h.Login)
	r.Post("/reminders/run", h.RunReminders)
}

// Export streams the backup file itself rather than a success envelope.
func (h *dataHandlers) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.BackupSvc.Export(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="hs-books-backup.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to write backup", "error", err)
	}
}

func (h *dataHandlers) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("unable to read backup: "+err.Error()))
		return
	}
	if err := h.BackupSvc.Import(r.Context(), data); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *dataHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	h.BackupSvc.Clear(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// Login accepts any credentials. There is a single local user.
func (h *dataHandlers) Login(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *dataHandlers) RunReminders(w http.ResponseWriter, r *http.Request) {
	run, err := h.RemindersSvc.Run(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, run)
}
