package web

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"strconv"
	"strings"

	"github.com/quickframe/quickframe/internal/render"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type statusResponse struct {
	Phase    string   `json:"phase"`
	Title    string   `json:"title"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Frame    uint64   `json:"frame"`
	Errors   []string `json:"errors"`
	Pressed  []string `json:"pressed"`
	Polygons int      `json:"polygons"`
	Circles  int      `json:"circles"`
	Rects    int      `json:"rects"`
	Err      string   `json:"err,omitempty"`
}

type eventRequest struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	mux.HandleFunc("/qr.png", func(w http.ResponseWriter, r *http.Request) { handleQR(w, r, deps) })
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) { handleEvent(w, r, deps) })
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	snap := deps.Status.Snapshot()
	resp := statusResponse{
		Phase:    snap.Phase.String(),
		Title:    snap.Title,
		Width:    snap.Width,
		Height:   snap.Height,
		Frame:    snap.Frame,
		Errors:   nonNil(snap.Errors),
		Pressed:  nonNil(snap.Pressed),
		Polygons: snap.Polygons,
		Circles:  snap.Circles,
		Rects:    snap.Rects,
		Err:      snap.Err,
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleFrame(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	img, presents := deps.Frames.LatestFrame()
	if img == nil {
		writeAPIError(w, http.StatusNotFound, "no_frame", "nothing presented yet")
		return
	}

	// Encode fully before writing so a failure can still become a JSON error.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Frame-Number", strconv.FormatUint(presents, 10))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func handleQR(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.PublicURL == "" {
		writeAPIError(w, http.StatusNotFound, "no_url", "public url not configured")
		return
	}

	size := defaultQRCodeSizePx
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 1024 {
			writeAPIError(w, http.StatusBadRequest, "invalid_size", "size must be between 1 and 1024")
			return
		}
		size = parsed
	}

	data, err := previewQRPNG(deps.PublicURL, size)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func handleEvent(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if !deps.eventsEnabled() {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "event injection not configured")
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ev, err := parseEvent(req)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_event", err.Error())
		return
	}
	deps.Events.Inject(ev)
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func parseEvent(req eventRequest) (render.Event, error) {
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case "quit":
		return render.Event{Type: render.EventQuit}, nil
	case "keydown", "keyup":
		key, ok := render.KeyByName(strings.ToLower(strings.TrimSpace(req.Key)))
		if !ok {
			return render.Event{}, &apiSimpleError{Message: "unknown key " + strconv.Quote(req.Key)}
		}
		typ := render.EventKeyDown
		if strings.EqualFold(req.Type, "keyup") {
			typ = render.EventKeyUp
		}
		return render.Event{Type: typ, Key: key}, nil
	default:
		return render.Event{}, &apiSimpleError{Message: "unknown event type " + strconv.Quote(req.Type)}
	}
}

type apiSimpleError struct{ Message string }

func (e *apiSimpleError) Error() string { return e.Message }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
