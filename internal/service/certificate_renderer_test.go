package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

func TestRenderCertificate(t *testing.T) {
	renderer := NewCertificateRenderer()
	now := time.Now()

	cert := &entity.Certificate{
		ID:         uuid.New(),
		Code:       uuid.New().String(),
		IssueDate:  now,
		ExpiryDate: now.AddDate(1, 0, 0),
		Score:      92.5,
		QRCode:     "certificate:" + uuid.New().String(),
	}
	course := &entity.Course{
		ID:    1,
		Title: "Safeguarding Adults",
	}
	user := &entity.User{
		ID:   uuid.New(),
		Name: "Jordan Hale",
	}

	pdfBytes, err := renderer.Render(cert, course, user)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)

	// A well-formed PDF starts with the magic header.
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderCertificateWithoutQRCode(t *testing.T) {
	renderer := NewCertificateRenderer()

	cert := &entity.Certificate{
		Code:       uuid.New().String(),
		IssueDate:  time.Now(),
		ExpiryDate: time.Now().AddDate(1, 0, 0),
		Score:      100,
	}

	pdfBytes, err := renderer.Render(cert, &entity.Course{Title: "Fire Safety"}, &entity.User{Name: "Sam Reyes"})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
