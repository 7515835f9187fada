package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/eruption"
	"github.com/delorianv/volcano-eruptions/internal/simulation"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type volcanoesResponse struct {
	Volcanoes []dataset.Record `json:"volcanoes"`
	Total     int              `json:"total"`
}

type frameResponse struct {
	Year    int           `json:"year"`
	Active  int           `json:"active"`
	Markers []markerState `json:"markers"`
}

type markerState struct {
	Name   string        `json:"name"`
	Active bool          `json:"active"`
	Alpha  int           `json:"alpha"`
	Color  eruption.RGBA `json:"color"`
}

type rangeResponse struct {
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
	MinYear   int `json:"min_year"`
	MaxYear   int `json:"max_year"`
}

type statsResponse struct {
	Records  int    `json:"records"`
	Dated    int    `json:"dated"`
	Undated  int    `json:"undated"`
	Earliest *int   `json:"earliest_year,omitempty"`
	Latest   *int   `json:"latest_year,omitempty"`
	Source   string `json:"source,omitempty"`
}

// handleVolcanoes returns the collection, optionally filtered to an eruption
// year window via ?start= and ?end=.
func (s *Server) handleVolcanoes(w http.ResponseWriter, r *http.Request) {
	col := s.collection()

	startText := r.URL.Query().Get("start")
	endText := r.URL.Query().Get("end")

	records := col.Records
	if startText != "" || endText != "" {
		start, err := parseYearParam(startText, eruption.MinYear)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_start", err.Error())
			return
		}
		end, err := parseYearParam(endText, eruption.MaxYear)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_end", err.Error())
			return
		}
		if start > end {
			writeError(w, http.StatusBadRequest, "invalid_range",
				fmt.Sprintf("start %d after end %d", start, end))
			return
		}
		records = col.FilterByRange(start, end)
	}

	writeJSON(w, http.StatusOK, volcanoesResponse{
		Volcanoes: records,
		Total:     len(records),
	})
}

// handleFrame computes the activity frame for one simulated year.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_year", "year must be an integer")
		return
	}

	col := s.collection()
	frame := simulation.ComputeFrame(col.Records, year, eruption.DefaultPreFade, eruption.DefaultPostFade)
	s.metrics.framesComputed.Inc()

	resp := frameResponse{
		Year:    frame.Year,
		Active:  frame.Active,
		Markers: make([]markerState, len(frame.States)),
	}
	for i, state := range frame.States {
		resp.Markers[i] = markerState{
			Name:   col.Records[i].Name,
			Active: state.Active,
			Alpha:  state.Alpha,
			Color:  state.Color(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRange returns the default simulation range for the loaded dataset.
func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	start, end := s.collection().DefaultRange(eruption.DefaultPreFade)
	writeJSON(w, http.StatusOK, rangeResponse{
		StartYear: start,
		EndYear:   end,
		MinYear:   eruption.MinYear,
		MaxYear:   eruption.MaxYear,
	})
}

// handleStats returns dataset summary statistics.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	col := s.collection()
	resp := statsResponse{
		Records: col.Len(),
		Undated: col.Undated(),
		Source:  col.Source,
	}
	resp.Dated = resp.Records - resp.Undated
	if min, max, ok := col.YearSpan(); ok {
		resp.Earliest = &min
		resp.Latest = &max
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": s.collection().Len(),
	})
}

func parseYearParam(text string, fallback int) (int, error) {
	if text == "" {
		return fallback, nil
	}
	year, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("year %q must be an integer", text)
	}
	return year, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}
