package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rivergarden/training-backend/internal/delivery/http/middleware"
	"github.com/rivergarden/training-backend/internal/usecase"
	"github.com/rivergarden/training-backend/pkg/response"
)

type CertificateHandler struct {
	certificateUsecase usecase.CertificateUsecase
}

func NewCertificateHandler(certificateUsecase usecase.CertificateUsecase) *CertificateHandler {
	return &CertificateHandler{certificateUsecase: certificateUsecase}
}

func (h *CertificateHandler) GetMyCertificates(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	certificates, err := h.certificateUsecase.MyCertificates(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list certificates")
		return
	}

	response.Success(w, http.StatusOK, "Certificates retrieved successfully", certificates)
}

func (h *CertificateHandler) DownloadCertificate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	certificateID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	pdfBytes, filename, err := h.certificateUsecase.Download(r.Context(), userID, certificateID)
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound:
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to render certificate")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
