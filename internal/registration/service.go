// Package registration accepts vendor registration submissions: it
// validates the form payload, persists uploaded images under the public
// uploads area, and records the pending registration in process memory.
package registration

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidPayload marks submissions that fail validation or carry
// unparseable business hours.
var ErrInvalidPayload = errors.New("invalid registration payload")

// Status of a registration record. Only pending is ever assigned here;
// approval is a back-office concern with no workflow in this service.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// HourRange is one day's opening window as submitted by the form.
type HourRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Image is one uploaded file, already read out of the multipart body.
type Image struct {
	Name string
	Data []byte
}

// Submission is a parsed registration form.
type Submission struct {
	BusinessName      string `validate:"required"`
	Category          string `validate:"required"`
	Description       string `validate:"required"`
	Address           string `validate:"required"`
	City              string `validate:"required"`
	State             string `validate:"required,len=2"`
	ZipCode           string `validate:"required,numeric,len=5"`
	Phone             string `validate:"required"`
	Email             string `validate:"required,email"`
	Website           string `validate:"omitempty,url"`
	BusinessHoursJSON string `validate:"required"`
	Images            []Image
}

// Registration is the stored record for a submitted vendor.
type Registration struct {
	ID            string               `json:"id"`
	BusinessName  string               `json:"businessName"`
	Category      string               `json:"category"`
	Description   string               `json:"description"`
	Address       string               `json:"address"`
	City          string               `json:"city"`
	State         string               `json:"state"`
	ZipCode       string               `json:"zipCode"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	Website       string               `json:"website,omitempty"`
	Images        []string             `json:"images"`
	BusinessHours map[string]HourRange `json:"businessHours"`
	Status        Status               `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// Service processes submissions. Records live in memory only and are
// lost on restart; image files survive under the upload directory.
type Service struct {
	uploadDir string
	validate  *validator.Validate
	log       zerolog.Logger

	mu      sync.RWMutex
	records map[string]*Registration
}

// New creates a registration service writing images into uploadDir.
func New(uploadDir string, log zerolog.Logger) *Service {
	return &Service{
		uploadDir: uploadDir,
		validate:  validator.New(),
		log:       log,
		records:   make(map[string]*Registration),
	}
}

// Submit validates the submission, stores its images and commits a
// pending record. Image writes are staged and committed all-or-nothing:
// a failed write leaves neither files nor a record behind.
func (s *Service) Submit(sub Submission) (*Registration, error) {
	if err := s.validate.Struct(sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var hours map[string]HourRange
	if err := json.Unmarshal([]byte(sub.BusinessHoursJSON), &hours); err != nil {
		return nil, fmt.Errorf("%w: business hours: %v", ErrInvalidPayload, err)
	}

	id := uuid.NewString()

	paths, err := s.storeImages(id, sub.Images)
	if err != nil {
		return nil, fmt.Errorf("store images: %w", err)
	}

	record := &Registration{
		ID:            id,
		BusinessName:  sub.BusinessName,
		Category:      sub.Category,
		Description:   sub.Description,
		Address:       sub.Address,
		City:          sub.City,
		State:         sub.State,
		ZipCode:       sub.ZipCode,
		Phone:         sub.Phone,
		Email:         sub.Email,
		Website:       sub.Website,
		Images:        paths,
		BusinessHours: hours,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.records[id] = record
	s.mu.Unlock()

	s.log.Info().Str("registration_id", id).Str("business", sub.BusinessName).
		Int("images", len(paths)).Msg("registration submitted")

	stored := *record
	return &stored, nil
}

// Get returns a copy of a stored registration.
func (s *Service) Get(id string) (*Registration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, false
	}
	copied := *record
	return &copied, true
}

// storeImages writes every image into a staging directory first and
// moves the batch into the public uploads directory only once all
// writes succeeded. Returns the public /uploads/... paths.
func (s *Service) storeImages(id string, images []Image) ([]string, error) {
	paths := make([]string, 0, len(images))
	if len(images) == 0 {
		return paths, nil
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	stageDir, err := os.MkdirTemp(s.uploadDir, ".stage-")
	if err != nil {
		return nil, fmt.Errorf("create stage dir: %w", err)
	}
	defer os.RemoveAll(stageDir)

	names := make([]string, 0, len(images))
	for _, img := range images {
		name := fmt.Sprintf("%s-%d-%s.jpg", id, time.Now().UnixMilli(), randomSuffix(5))
		if err := os.WriteFile(filepath.Join(stageDir, name), img.Data, 0o644); err != nil {
			return nil, fmt.Errorf("stage image %q: %w", img.Name, err)
		}
		names = append(names, name)
	}

	moved := make([]string, 0, len(names))
	for _, name := range names {
		if err := os.Rename(filepath.Join(stageDir, name), filepath.Join(s.uploadDir, name)); err != nil {
			for _, m := range moved {
				_ = os.Remove(filepath.Join(s.uploadDir, m))
			}
			return nil, fmt.Errorf("commit image %q: %w", name, err)
		}
		moved = append(moved, name)
		paths = append(paths, "/uploads/"+name)
	}
	return paths, nil
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}
