package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/hsbooks/internal/repository"
	"github.com/GregMSThompson/hsbooks/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Repo            *repository.Repository
	DashboardSvc    dashboardService
	ReportSvc       reportService
	BackupSvc       backupService
	RemindersSvc    remindersService
}
