package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/photopager/internal/core/ports"
	"github.com/GoArmGo/photopager/internal/domain"
	"github.com/GoArmGo/photopager/internal/messaging/payloads"
	"github.com/GoArmGo/photopager/internal/pagination"
	"github.com/GoArmGo/photopager/internal/query"
	"github.com/GoArmGo/photopager/internal/usecase"
)

// PhotoHandler — обработчик HTTP-запросов постраничного просмотра фото.
type PhotoHandler struct {
	gallery       usecase.GalleryUseCase
	syncPublisher ports.SyncPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// NewPhotoHandler создаёт новый экземпляр PhotoHandler.
// publisher может быть nil: тогда /admin/sync отвечает 503.
func NewPhotoHandler(
	gallery usecase.GalleryUseCase,
	publisher ports.SyncPublisher,
	logger *slog.Logger,
) *PhotoHandler {
	return &PhotoHandler{
		gallery:       gallery,
		syncPublisher: publisher,
		logger:        logger,
		now:           time.Now,
	}
}

// Register вешает маршруты обработчика на роутер.
func (h *PhotoHandler) Register(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/page/{page}", h.Page)
	r.Get("/api/page/{page}", h.PageJSON)
	r.Post("/admin/sync", h.RequestSync)
	r.Get("/healthz", h.Health)
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// pageRequest собирает PageRequest из пути и query.
func pageRequest(r *http.Request) (domain.PageRequest, error) {
	page, err := pagination.ParsePage(chi.URLParam(r, "page"))
	if err != nil {
		return domain.PageRequest{}, err
	}
	values := r.URL.Query()
	return domain.PageRequest{
		Page:        page,
		RowsPerPage: pagination.ParseRows(values.Get(query.RowsKey)),
		SearchTerm:  values.Get(query.SearchKey),
	}, nil
}

// Index — перенаправляет на первую страницу.
func (h *PhotoHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, query.PageURL(pagination.DefaultPage), http.StatusFound)
}

// Page — HTML-страница с фото. Ошибка источника не даёт 500: страница
// рендерится с сообщением и пустым списком.
func (h *PhotoHandler) Page(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequest(r)
	if err != nil {
		target := query.CanonicalPageURL(r.URL.Query())
		h.logger.Warn("invalid page parameter, redirecting",
			"page", chi.URLParam(r, "page"),
			"target", target,
		)
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	res, err := h.gallery.BrowsePage(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to browse page", "page", req.Page, "rows", req.RowsPerPage, "error", err)
		res = nil
	}

	view := newPageView(r.URL.Path, r.URL.Query(), req, res)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write HTTP response", "error", err)
	}
}

// PageJSON — та же страница в JSON.
func (h *PhotoHandler) PageJSON(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequest(r)
	if err != nil {
		h.logger.Warn("invalid page parameter", "page", chi.URLParam(r, "page"))
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	res, err := h.gallery.BrowsePage(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to browse page", "page", req.Page, "error", err)
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			respondWithError(w, http.StatusBadGateway, fetchErrorMessage, h.logger)
			return
		}
		respondWithError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, res, h.logger)
}

// RequestSync — ставит в очередь синхронизацию зеркала.
func (h *PhotoHandler) RequestSync(w http.ResponseWriter, r *http.Request) {
	if h.syncPublisher == nil {
		respondWithError(w, http.StatusServiceUnavailable, "sync broker is not configured", h.logger)
		return
	}

	payload := payloads.NewSyncPayload(h.now())
	if err := h.syncPublisher.PublishSyncRequest(r.Context(), payload); err != nil {
		h.logger.Error("failed to publish sync request", "request_id", payload.ID, "error", err)
		respondWithError(w, http.StatusBadGateway, "failed to enqueue sync request", h.logger)
		return
	}

	h.logger.Info("sync request enqueued", "request_id", payload.ID)
	respondWithJSON(w, http.StatusAccepted, payload, h.logger)
}

// Health — проверка живости.
func (h *PhotoHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
