package httpapi

import (
	"errors"
	"io"
	"net/http"

	"weddingdir/internal/registration"
)

// maxRegistrationBytes bounds a multipart registration body, images
// included.
const maxRegistrationBytes = 32 << 20

type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleRegister serves POST /api/vendors/register: a multipart form
// with the business fields, JSON-encoded business hours and zero or
// more image files.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRegistrationBytes)
	if err := r.ParseMultipartForm(maxRegistrationBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, registerResponse{Success: false, Error: "invalid multipart form"})
		return
	}

	sub := registration.Submission{
		BusinessName:      r.FormValue("businessName"),
		Category:          r.FormValue("category"),
		Description:       r.FormValue("description"),
		Address:           r.FormValue("address"),
		City:              r.FormValue("city"),
		State:             r.FormValue("state"),
		ZipCode:           r.FormValue("zipCode"),
		Phone:             r.FormValue("phone"),
		Email:             r.FormValue("email"),
		Website:           r.FormValue("website"),
		BusinessHoursJSON: r.FormValue("businessHours"),
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, registerResponse{Success: false, Error: "Failed to process registration"})
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, registerResponse{Success: false, Error: "Failed to process registration"})
				return
			}
			sub.Images = append(sub.Images, registration.Image{Name: header.Filename, Data: data})
		}
	}

	record, err := s.registrations.Submit(sub)
	if err != nil {
		if errors.Is(err, registration.ErrInvalidPayload) {
			writeJSON(w, http.StatusBadRequest, registerResponse{Success: false, Error: "Invalid registration details"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, registerResponse{Success: false, Error: "Failed to process registration"})
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Success: true,
		Message: "Registration submitted successfully",
		ID:      record.ID,
	})
}
