package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

const maxPredictionBodyBytes = 1 << 16

type Handler struct {
	historyService    *usecase.HistoryService
	predictionService *usecase.PredictionService
	datasetService    *usecase.DatasetService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	historyService *usecase.HistoryService,
	predictionService *usecase.PredictionService,
	datasetService *usecase.DatasetService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		historyService:    historyService,
		predictionService: predictionService,
		datasetService:    datasetService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.historyService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if teams == nil {
		teams = []string{}
	}

	writeSuccess(ctx, w, http.StatusOK, teamListDTO{Teams: teams})
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistory")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	history, err := h.historyService.HistoryFor(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "get team history failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, historyToDTO(history))
}

func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamForm")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	n, err := parseFormLength(r.URL.Query().Get("n"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	symbols, err := h.historyService.FormFor(ctx, team, n)
	if err != nil {
		h.logger.WarnContext(ctx, "get team form failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamFormDTO{Team: team, formStripDTO: formStrip(symbols)})
}

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePrediction")
	defer span.End()

	var req createPredictionRequest
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxPredictionBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.predictionService.Predict(ctx, req.HomeTeam, req.AwayTeam)
	if err != nil {
		h.logger.WarnContext(ctx, "create prediction failed",
			"home_team", req.HomeTeam,
			"away_team", req.AwayTeam,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(result))
}

func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadDataset")
	defer span.End()

	rows, err := h.datasetService.Reload(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reload dataset failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, datasetReloadDTO{Rows: rows})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// parseFormLength returns 0 for a missing value so the service default applies.
func parseFormLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 50 {
		return 0, fmt.Errorf("%w: n must be an integer between 1 and 50", usecase.ErrInvalidInput)
	}
	return n, nil
}
