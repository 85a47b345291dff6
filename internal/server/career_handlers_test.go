package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogspot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApplicationStartsPending(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	app := newTestApp()
	app.Post("/api/careers", s.CreateApplication)

	letter := strings.Repeat("I write Go services and want to join the team. ", 3)
	body, err := json.Marshal(map[string]string{
		"name":         "Dana",
		"email":        "dana@example.com",
		"position":     "Backend Engineer",
		"experience":   "5 years",
		"skills":       "Go, Postgres",
		"cover_letter": letter,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/careers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var created models.CareerApplication
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.ApplicationStatusPending, created.Status)
}

func TestCreateApplicationShortCoverLetter(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	app := newTestApp()
	app.Post("/api/careers", s.CreateApplication)

	body := []byte(`{"name":"Dana","email":"dana@example.com","position":"Backend Engineer","experience":"5 years","skills":"Go","cover_letter":"hire me"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/careers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Cover letter must be at least 50 characters", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.CareerApplication{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplicationStatsEmptyStore(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	app := newTestApp()
	app.Get("/api/careers/stats", s.GetApplicationStats)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers/stats", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)

	var stats struct {
		Pending     int64 `json:"pending"`
		Reviewing   int64 `json:"reviewing"`
		Interviewed int64 `json:"interviewed"`
		Hired       int64 `json:"hired"`
		Rejected    int64 `json:"rejected"`
		Total       int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Reviewing)
	assert.Zero(t, stats.Interviewed)
	assert.Zero(t, stats.Hired)
	assert.Zero(t, stats.Rejected)
	assert.Zero(t, stats.Total)
}

func TestUpdateApplicationStatusHandler(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	stored := models.CareerApplication{Name: "Dana", Email: "dana@example.com", Position: "Backend Engineer", Experience: "5 years", Skills: "Go"}
	require.NoError(t, db.Create(&stored).Error)

	app := newTestApp()
	app.Put("/api/careers/:id/status", s.UpdateApplicationStatus)

	body := []byte(`{"status":"reviewing"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/careers/1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.CareerApplication
	require.NoError(t, db.First(&reloaded, stored.ID).Error)
	assert.Equal(t, models.ApplicationStatusReviewing, reloaded.Status)
}

func TestGetApplicationsFilterByPosition(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	require.NoError(t, db.Create(&models.CareerApplication{Name: "A", Email: "a@example.com", Position: "Backend Engineer", Experience: "1", Skills: "Go"}).Error)
	require.NoError(t, db.Create(&models.CareerApplication{Name: "B", Email: "b@example.com", Position: "Designer", Experience: "2", Skills: "Figma"}).Error)

	app := newTestApp()
	app.Get("/api/careers", s.GetApplications)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers?position=Backend+Engineer", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Total)
	assert.Equal(t, int64(1), *env.Total)
}
