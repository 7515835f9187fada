package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
)

func intPtr(v int) *int { return &v }

func testCollection() *dataset.Collection {
	return &dataset.Collection{
		Records: []dataset.Record{
			{Name: "Etna", Country: "Italy", Latitude: 37.734, Longitude: 15.004, LastEruption: "2023 CE", EruptionYear: intPtr(2023)},
			{Name: "Vesuvius", Country: "Italy", Latitude: 40.821, Longitude: 14.426, LastEruption: "1944 CE", EruptionYear: intPtr(1944)},
			{Name: "Thera", Country: "Greece", Latitude: 36.404, Longitude: 25.396, LastEruption: "1610 BCE", EruptionYear: intPtr(-1610)},
			{Name: "Mystery", Country: "Unknown", Latitude: 0, Longitude: 0, LastEruption: "Unknown"},
		},
		Source: "test.csv",
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(testCollection(), nil, nil)
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, testServer(t), "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 4, body["records"])
}

func TestVolcanoes(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/volcanoes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body volcanoesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Total)
	assert.Len(t, body.Volcanoes, 4)
}

func TestVolcanoesFiltered(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/volcanoes?start=1900&end=2000")
	require.Equal(t, http.StatusOK, rec.Code)

	var body volcanoesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Vesuvius", body.Volcanoes[0].Name)
}

func TestVolcanoesBadRange(t *testing.T) {
	for _, path := range []string{
		"/api/v1/volcanoes?start=abc",
		"/api/v1/volcanoes?end=xyz",
		"/api/v1/volcanoes?start=2000&end=1900",
	} {
		rec := doRequest(t, testServer(t), path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestFrame(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/frame/1944")
	require.Equal(t, http.StatusOK, rec.Code)

	var body frameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1944, body.Year)
	assert.Equal(t, 1, body.Active)
	require.Len(t, body.Markers, 4)

	byName := map[string]markerState{}
	for _, m := range body.Markers {
		byName[m.Name] = m
	}
	assert.True(t, byName["Vesuvius"].Active)
	assert.Equal(t, 180, byName["Vesuvius"].Alpha)
	assert.False(t, byName["Etna"].Active)
	assert.False(t, byName["Mystery"].Active)
}

func TestFrameBadYear(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/frame/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRange(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/range")
	require.Equal(t, http.StatusOK, rec.Code)

	var body rangeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, -4360, body.StartYear)
	assert.Equal(t, 2023, body.EndYear)
	assert.Equal(t, -4360, body.MinYear)
	assert.Equal(t, 2023, body.MaxYear)
}

func TestStats(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Records)
	assert.Equal(t, 3, body.Dated)
	assert.Equal(t, 1, body.Undated)
	require.NotNil(t, body.Earliest)
	require.NotNil(t, body.Latest)
	assert.Equal(t, -1610, *body.Earliest)
	assert.Equal(t, 2023, *body.Latest)
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t)
	doRequest(t, s, "/api/v1/frame/1944")

	rec := doRequest(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "volcano_dataset_records 4")
	assert.Contains(t, rec.Body.String(), "volcano_frames_computed_total 1")
}

func TestReplaceCollection(t *testing.T) {
	s := testServer(t)
	s.ReplaceCollection(&dataset.Collection{
		Records: []dataset.Record{
			{Name: "Fuji", Country: "Japan", Latitude: 35.36, Longitude: 138.73, LastEruption: "1707 CE", EruptionYear: intPtr(1707)},
		},
	})

	var body volcanoesResponse
	rec := doRequest(t, s, "/api/v1/volcanoes")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Fuji", body.Volcanoes[0].Name)

	rec = doRequest(t, s, "/metrics")
	assert.Contains(t, rec.Body.String(), "volcano_dataset_records 1")
	assert.Contains(t, rec.Body.String(), "volcano_dataset_reloads_total 1")
}
