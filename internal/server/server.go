// Package server implements the web UI and JSON API for the calculators.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/iwvelando/roas-calculator/internal/campaign"
	"github.com/iwvelando/roas-calculator/internal/config"
	"github.com/iwvelando/roas-calculator/internal/roi"
	"github.com/iwvelando/roas-calculator/pkg/constants"
	"github.com/iwvelando/roas-calculator/pkg/output"
	"github.com/iwvelando/roas-calculator/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	defaults       *config.Configuration
	maxRequestSize int64
	version        string
	metrics        *metrics
}

// NewHandler constructs the HTTP handler that serves the web UI and
// calculator API. The defaults configuration supplies form prefill values
// and upgrade costs for requests that omit them.
func NewHandler(logger *zap.Logger, defaults *config.Configuration, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults == nil {
		defaults = config.DefaultConfiguration()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		defaults:       defaults,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
		metrics:        newMetrics(),
	}

	mux := chi.NewRouter()
	mux.Use(requestID)
	mux.Use(requestLogger(logger))
	mux.Use(h.metrics.instrument)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", h.metrics.handler())

	mux.Post("/api/roas", h.handleROAS)
	mux.Post("/api/roi", h.handleROI)
	mux.Post("/api/roi/summary", h.handleSummary)
	mux.Post("/api/config", h.handleConfigUpload)
	mux.Get("/api/defaults", h.handleDefaults)
	mux.Get("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/*", http.FileServer(http.FS(sub)))

	return mux
}

type roasResponse struct {
	Breakdown campaign.Breakdown       `json:"breakdown"`
	Waterfall []campaign.WaterfallStep `json:"waterfall"`
	CSV       string                   `json:"csv"`
	Warnings  []string                 `json:"warnings,omitempty"`
	Duration  string                   `json:"duration"`
}

func (h *handler) handleROAS(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var input campaign.Campaign
	if !h.decodeBody(w, r, &input, "server.handleROAS") {
		return
	}

	warnings := validation.CheckCampaign(validation.CampaignInput{
		Revenue:            input.Revenue,
		AdSpend:            input.AdSpend,
		NewBuyerShare:      input.NewBuyerShare,
		DiscountPercentage: input.DiscountPercentage,
	})

	breakdown := campaign.GetBreakdown(input)
	h.metrics.calculations.WithLabelValues("roas").Inc()

	elapsed := time.Since(start)
	h.logger.Info("roas computed",
		zap.String("op", "server.handleROAS"),
		zap.Float64("traditionalRoas", breakdown.TraditionalROAS),
		zap.Float64("adjustedRoas", breakdown.AdjustedROAS),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, roasResponse{
		Breakdown: breakdown,
		Waterfall: breakdown.Waterfall(),
		CSV:       output.BreakdownCSVString(breakdown),
		Warnings:  warnings,
		Duration:  elapsed.String(),
	})
}

type roiRequest struct {
	Merchant roi.MerchantMetrics `json:"merchant"`
	Scenario string              `json:"scenario,omitempty"`
}

type roiResponse struct {
	Scenario roi.GrowthScenario `json:"scenario"`
	Impacts  []roi.Impact       `json:"impacts"`
	Warnings []string           `json:"warnings,omitempty"`
	Duration string             `json:"duration"`
}

func (h *handler) handleROI(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req roiRequest
	if !h.decodeBody(w, r, &req, "server.handleROI") {
		return
	}

	scenario := roi.Medium
	if req.Scenario != "" {
		parsed, err := roi.ParseScenario(req.Scenario)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleROI")
			return
		}
		scenario = parsed
	}

	warnings := h.merchantWarnings(req.Merchant)

	impacts, err := roi.EstimateAll(req.Merchant, scenario)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleROI")
		return
	}
	h.metrics.calculations.WithLabelValues("roi").Inc()

	elapsed := time.Since(start)
	h.logger.Info("roi computed",
		zap.String("op", "server.handleROI"),
		zap.String("scenario", string(scenario)),
		zap.Int("features", len(impacts)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, roiResponse{
		Scenario: scenario,
		Impacts:  impacts,
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

type summaryRequest struct {
	Merchant     roi.MerchantMetrics           `json:"merchant"`
	UpgradeCosts map[string]map[string]float64 `json:"upgradeCosts,omitempty"`
}

type summaryResponse struct {
	Summary  roi.Summary `json:"summary"`
	CSV      string      `json:"csv"`
	Warnings []string    `json:"warnings,omitempty"`
	Duration string      `json:"duration"`
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req summaryRequest
	if !h.decodeBody(w, r, &req, "server.handleSummary") {
		return
	}

	upgrades := h.defaults.UpgradeMetrics()
	if req.UpgradeCosts != nil {
		parsed, err := parseUpgradeCosts(req.UpgradeCosts)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleSummary")
			return
		}
		upgrades = parsed
	}

	warnings := h.merchantWarnings(req.Merchant)

	summary, err := roi.GetSummary(req.Merchant, upgrades)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleSummary")
		return
	}
	h.metrics.calculations.WithLabelValues("summary").Inc()

	elapsed := time.Since(start)
	h.logger.Info("summary computed",
		zap.String("op", "server.handleSummary"),
		zap.Int("rows", len(summary.Rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, summaryResponse{
		Summary:  summary,
		CSV:      output.SummaryCSVString(summary),
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

type configUploadResponse struct {
	Campaign     campaign.Campaign   `json:"campaign"`
	Merchant     roi.MerchantMetrics `json:"merchant"`
	UpgradeCosts config.UpgradeCosts `json:"upgradeCosts"`
	Warnings     []string            `json:"warnings,omitempty"`
}

// handleConfigUpload accepts a YAML configuration document, merges it over
// the built-in defaults, and returns the resulting inputs so the UI can
// prefill its forms from an uploaded file.
func (h *handler) handleConfigUpload(w http.ResponseWriter, r *http.Request) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "server.handleConfigUpload")
			return
		}
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to read request: %v", err), "server.handleConfigUpload")
		return
	}

	conf, err := config.LoadConfigurationFromReader(bytes.NewReader(body))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleConfigUpload")
		return
	}

	h.logger.Info("config uploaded",
		zap.String("op", "server.handleConfigUpload"),
		zap.Int("bytes", len(body)),
	)

	h.writeJSON(w, http.StatusOK, configUploadResponse{
		Campaign:     conf.Campaign,
		Merchant:     conf.Merchant,
		UpgradeCosts: conf.UpgradeCosts,
		Warnings:     conf.ValidateConfiguration(),
	})
}

type defaultsResponse struct {
	Campaign     campaign.Campaign   `json:"campaign"`
	Merchant     roi.MerchantMetrics `json:"merchant"`
	UpgradeCosts config.UpgradeCosts `json:"upgradeCosts"`
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, defaultsResponse{
		Campaign:     h.defaults.Campaign,
		Merchant:     h.defaults.Merchant,
		UpgradeCosts: h.defaults.UpgradeCosts,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeBody decodes a JSON request body with the configured size limit.
// On failure it writes the error response and returns false.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) merchantWarnings(m roi.MerchantMetrics) []string {
	return validation.CheckMerchant(validation.MerchantInput{
		AnnualGMV:                   m.AnnualGMV,
		AOV:                         m.AOV,
		AnnualTransactions:          m.AnnualTransactions,
		ProfitMargin:                m.ProfitMargin,
		AdSpend:                     m.AdSpend,
		RetargetingBudgetAllocation: m.RetargetingBudgetAllocation,
		RetargetingCPA:              m.RetargetingCPA,
		ProspectingCPA:              m.ProspectingCPA,
		LTV:                         m.LTV,
		PaymentsProfileOnline:       m.PaymentsProfileOnline,
		OrdersOnPayments:            m.OrdersOnPayments,
		CurrentConversionRate:       m.CurrentConversionRate,
		ShopPayUsage:                m.ShopPayUsage,
	})
}

func parseUpgradeCosts(raw map[string]map[string]float64) (roi.UpgradeMetrics, error) {
	costs := make(map[roi.Feature]map[roi.GrowthScenario]float64, len(raw))
	for featureKey, scenarios := range raw {
		feature, err := roi.ParseFeature(featureKey)
		if err != nil {
			return roi.UpgradeMetrics{}, err
		}
		parsed := make(map[roi.GrowthScenario]float64, len(scenarios))
		for scenarioKey, cost := range scenarios {
			scenario, err := roi.ParseScenario(scenarioKey)
			if err != nil {
				return roi.UpgradeMetrics{}, err
			}
			parsed[scenario] = cost
		}
		costs[feature] = parsed
	}
	return roi.UpgradeMetrics{Costs: costs}, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
